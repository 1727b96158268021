package types

// AclRecord is one filesystem entry's ownership and permission state.
type AclRecord struct {
	Path      string
	Owner     string
	Group     string
	Mode      string
	IsDir     bool
	SizeBytes int64
	Status    string
}

func (r AclRecord) Headers() []string {
	return []string{"Path", "Owner", "Group", "Mode", "IsDir", "SizeBytes", "Status"}
}

func (r AclRecord) Values() []string {
	return []string{r.Path, r.Owner, r.Group, r.Mode, boolString(r.IsDir), int64String(r.SizeBytes), r.Status}
}
