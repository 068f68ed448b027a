package commands

// SetArgs changes the root command args. Shouldn't be in general use.
func (a *App) SetArgs(args ...string) {
	a.cmd.SetArgs(args)
}

// Config returns the configuration currently applied to the app. Shouldn't be in general use.
func (a *App) Config() appConfig {
	return a.config
}
