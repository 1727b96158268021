package options

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

func ExchangeMailbox() cfg.Param {
	return cfg.NewParam[[]string]("mailbox", "mailbox identities (SMTP address or UPN); combine with --input-file for bulk runs").
		WithShortcode("m")
}

func ExchangeTrustee() cfg.Param {
	return cfg.NewParam[string]("user", "restrict the audit to grants held by this trustee")
}

func ExchangeIncludeInherited() cfg.Param {
	return cfg.NewParam[bool]("include-inherited", "include inherited permission entries").
		WithDefault(false)
}

func ExchangeConvertBack() cfg.Param {
	return cfg.NewParam[bool]("back", "convert shared mailboxes back to regular").
		WithDefault(false)
}

func ExchangeAutoReplyState() cfg.Param {
	return cfg.NewParam[string]("state", "auto-reply state to set: enabled, disabled, or scheduled").
		WithDefault("enabled")
}

func ExchangeAutoReplyMessage() cfg.Param {
	return cfg.NewParam[string]("reply-message", "automatic reply body for internal and external senders")
}

func ExchangeScheduleStart() cfg.Param {
	return cfg.NewParam[string]("start", "schedule window start (RFC 3339), only used with --state scheduled")
}

func ExchangeScheduleEnd() cfg.Param {
	return cfg.NewParam[string]("end", "schedule window end (RFC 3339), only used with --state scheduled")
}
