package cmd

// import modules so their init() functions are called

import (
	_ "github.com/castellanops/cumulus/pkg/modules/ad/manage"
	_ "github.com/castellanops/cumulus/pkg/modules/ad/recon"
	_ "github.com/castellanops/cumulus/pkg/modules/entra/manage"
	_ "github.com/castellanops/cumulus/pkg/modules/entra/recon"
	_ "github.com/castellanops/cumulus/pkg/modules/exchange/manage"
	_ "github.com/castellanops/cumulus/pkg/modules/exchange/recon"
	_ "github.com/castellanops/cumulus/pkg/modules/fs/audit"
	_ "github.com/castellanops/cumulus/pkg/modules/fs/manage"
	_ "github.com/castellanops/cumulus/pkg/modules/sharepoint/recon"
)
