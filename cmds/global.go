package cmds

// GlobalExecutor holds commands defined by packages at init time.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global commands.
func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}
