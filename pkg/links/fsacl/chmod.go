package fsacl

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// TreeChmodLink applies a permission mode or new owner to every matching
// entry beneath a root. Per-entry failures become Error rows and the
// walk continues.
type TreeChmodLink struct {
	*chain.Base
}

func NewTreeChmodLink(configs ...cfg.Config) chain.Link {
	l := &TreeChmodLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *TreeChmodLink) Params() []cfg.Param {
	return []cfg.Param{
		options.FsRoot(),
		options.FsMode(),
		options.FsOwner(),
		options.FsDirsOnly(),
		options.DryRun(),
	}
}

func (l *TreeChmodLink) Process(input any) error {
	root, _ := cfg.As[string](l.Arg("root"))
	modeArg, _ := cfg.As[string](l.Arg("mode"))
	ownerArg, _ := cfg.As[string](l.Arg("owner"))
	dirsOnly, _ := cfg.As[bool](l.Arg("dirs-only"))
	dryRun, _ := cfg.As[bool](l.Arg("dry-run"))

	if modeArg == "" && ownerArg == "" {
		return fmt.Errorf("nothing to do; provide --mode or --owner")
	}

	var mode os.FileMode
	if modeArg != "" {
		parsed, err := ParseMode(modeArg)
		if err != nil {
			return err
		}
		mode = parsed
	}

	uid := -1
	if ownerArg != "" {
		resolved, err := resolveUID(ownerArg)
		if err != nil {
			return err
		}
		uid = resolved
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			l.Logger.Warn("Walk error", "path", path, "error", walkErr)
			return l.Send(types.ActionRecord{Target: path, Action: "walk", Status: types.StatusError, Detail: walkErr.Error()})
		}
		if dirsOnly && !d.IsDir() {
			return nil
		}

		if modeArg != "" {
			if err := l.applyMode(path, mode, dryRun); err != nil {
				return err
			}
		}
		if uid >= 0 {
			if err := l.applyOwner(path, ownerArg, uid, dryRun); err != nil {
				return err
			}
		}
		return nil
	})
}

func (l *TreeChmodLink) applyMode(path string, mode os.FileMode, dryRun bool) error {
	rec := types.ActionRecord{Target: path, Action: "chmod"}

	if dryRun {
		rec.Status = types.StatusDryRun
		rec.Detail = fmt.Sprintf("would set mode %04o", mode)
		return l.Send(rec)
	}

	if err := os.Chmod(path, mode); err != nil {
		l.Logger.Warn("Chmod failed", "path", path, "error", err)
		rec.Status = types.StatusError
		rec.Detail = err.Error()
	} else {
		rec.Status = types.StatusOK
		rec.Detail = fmt.Sprintf("mode %04o", mode)
	}

	return l.Send(rec)
}

func (l *TreeChmodLink) applyOwner(path, owner string, uid int, dryRun bool) error {
	rec := types.ActionRecord{Target: path, Action: "chown"}

	if dryRun {
		rec.Status = types.StatusDryRun
		rec.Detail = fmt.Sprintf("would set owner %s", owner)
		return l.Send(rec)
	}

	// -1 keeps the group unchanged
	if err := os.Chown(path, uid, -1); err != nil {
		l.Logger.Warn("Chown failed", "path", path, "error", err)
		rec.Status = types.StatusError
		rec.Detail = err.Error()
	} else {
		rec.Status = types.StatusOK
		rec.Detail = fmt.Sprintf("owner %s", owner)
	}

	return l.Send(rec)
}

// ParseMode parses an octal permission string such as 0750 or 644.
func ParseMode(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o7777 {
		return 0, fmt.Errorf("invalid mode %q: want octal permission bits like 0750", s)
	}
	return os.FileMode(v), nil
}

func resolveUID(owner string) (int, error) {
	if uid, err := strconv.Atoi(owner); err == nil {
		return uid, nil
	}
	u, err := user.Lookup(owner)
	if err != nil {
		return 0, fmt.Errorf("unknown user %q: %w", owner, err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return 0, fmt.Errorf("non-numeric uid for %q", owner)
	}
	return uid, nil
}
