package tasks

import (
	"github.com/rotisserie/eris"

	"github.com/taski-rs/shell/pkg/shell"
)

// Clean removes the target directory after confirmation
func Clean(c *TaskContext) error {
	target := c.Shell.TargetDir()

	ok, err := c.Shell.Exists(target)
	if err != nil {
		return eris.Wrap(err, "failed to check target directory")
	}
	if !ok {
		c.UI.Infof("Nothing to clean: %s does not exist", target)
		return nil
	}

	if !c.Force {
		c.UI.Warningf("This will remove %s", target)
		confirm, err := c.UI.PromptYesNo("Remove the target directory?", false)
		if err != nil {
			return err
		}
		if !confirm {
			c.UI.Info("Clean cancelled (use --force to skip the confirmation)")
			return nil
		}
	}

	c.UI.Infof("Removing %s...", target)
	if err := c.Shell.Remove(target, shell.RemoveRecursive); err != nil {
		return eris.Wrap(err, "failed to remove target directory")
	}
	c.UI.Success("✓ Target directory removed")
	return nil
}
