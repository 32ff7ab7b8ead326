package tasks

import "github.com/rotisserie/eris"

// Build compiles the workspace with the configured profile
func Build(c *TaskContext) error {
	s, err := c.Config.Settings()
	if err != nil {
		return eris.Wrap(err, "failed to read settings")
	}

	c.UI.Infof("Building with profile %s", s.Profile)
	return cargoTask(c, "build", s)
}

// Test runs the workspace tests with the configured profile
func Test(c *TaskContext) error {
	s, err := c.Config.Settings()
	if err != nil {
		return eris.Wrap(err, "failed to read settings")
	}

	c.UI.Infof("Testing with profile %s", s.Profile)
	return cargoTask(c, "test", s)
}
