package fsacl

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// idCache memoizes uid/gid lookups, the same ids repeat across a tree.
type idCache struct {
	users  map[uint32]string
	groups map[uint32]string
}

func newIDCache() *idCache {
	return &idCache{users: map[uint32]string{}, groups: map[uint32]string{}}
}

func (c *idCache) userName(uid uint32) string {
	if name, ok := c.users[uid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(name); err == nil {
		name = u.Username
	}
	c.users[uid] = name
	return name
}

func (c *idCache) groupName(gid uint32) string {
	if name, ok := c.groups[gid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(name); err == nil {
		name = g.Name
	}
	c.groups[gid] = name
	return name
}

// AclWalkLink walks a directory tree and reports ownership and
// permissions for each entry. Stat failures become Error rows and the
// walk continues.
type AclWalkLink struct {
	*chain.Base
}

func NewAclWalkLink(configs ...cfg.Config) chain.Link {
	l := &AclWalkLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *AclWalkLink) Params() []cfg.Param {
	return []cfg.Param{
		options.FsRoot(),
		options.FsIdentity(),
		options.FsWritableByOthers(),
	}
}

func (l *AclWalkLink) Process(input any) error {
	root, _ := cfg.As[string](l.Arg("root"))
	identity, _ := cfg.As[string](l.Arg("identity"))
	writableOnly, _ := cfg.As[bool](l.Arg("writable-by-others"))

	cache := newIDCache()

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			l.Logger.Warn("Walk error", "path", path, "error", walkErr)
			return l.Send(types.AclRecord{Path: path, Status: types.StatusError})
		}

		info, err := d.Info()
		if err != nil {
			l.Logger.Warn("Stat failed", "path", path, "error", err)
			return l.Send(types.AclRecord{Path: path, Status: types.StatusError})
		}

		rec := entryRecord(path, info, cache)

		if identity != "" && !MatchesIdentity(rec.Owner, ownerUID(info), identity) {
			return nil
		}
		if writableOnly && !WritableByOthers(info.Mode()) {
			return nil
		}

		return l.Send(rec)
	})
}

func entryRecord(path string, info fs.FileInfo, cache *idCache) types.AclRecord {
	rec := types.AclRecord{
		Path:      path,
		Mode:      info.Mode().String(),
		IsDir:     info.IsDir(),
		SizeBytes: info.Size(),
		Status:    types.StatusOK,
	}
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		rec.Owner = cache.userName(st.Uid)
		rec.Group = cache.groupName(st.Gid)
	}
	return rec
}

func ownerUID(info fs.FileInfo) string {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return strconv.FormatUint(uint64(st.Uid), 10)
	}
	return ""
}

// MatchesIdentity reports whether an entry's owner matches the identity
// filter, which may be a user name or a numeric uid.
func MatchesIdentity(ownerName, ownerUID, identity string) bool {
	return identity == ownerName || identity == ownerUID
}

// WritableByOthers reports whether the group or world write bits are set.
func WritableByOthers(mode os.FileMode) bool {
	return mode.Perm()&0o022 != 0
}
