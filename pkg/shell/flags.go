package shell

// CreateFlags configures CreateDir.
type CreateFlags uint32

// CreateRecursive creates missing parents and tolerates an existing directory.
const CreateRecursive CreateFlags = 1 << 0

// Contains reports whether all bits of flag are set.
func (f CreateFlags) Contains(flag CreateFlags) bool {
	return f&flag == flag
}

// RemoveFlags configures Remove.
type RemoveFlags uint32

// RemoveRecursive removes a directory together with its contents.
const RemoveRecursive RemoveFlags = 1 << 0

// Contains reports whether all bits of flag are set.
func (f RemoveFlags) Contains(flag RemoveFlags) bool {
	return f&flag == flag
}
