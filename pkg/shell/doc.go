// Package shell is a small convenience layer for xtask-style build scripts.
//
// A Shell resolves the project root, the target directory and a snapshot of
// the process environment once, then offers filesystem helpers and a
// chainable Subprocess builder for running build tools:
//
//	sh := shell.New()
//	if err := sh.CreateDir(sh.TargetDir(), shell.CreateRecursive); err != nil {
//		return err
//	}
//	if err := sh.Cargo().Args("build", "--release").Run(); err != nil {
//		return err
//	}
//
// Children never inherit the live process environment. Their environment is
// rebuilt from the snapshot taken when the Shell was created plus any
// overrides set on the Subprocess.
//
// When DRY_RUN is present in the snapshot, Subprocess.Run prints a notice and
// returns nil without spawning anything. Filesystem helpers are not affected
// by dry-run.
package shell
