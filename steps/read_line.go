package steps

import (
	"github.com/chzyer/readline"
)

// ReadLine blocks for one line of user input between snippets.
type ReadLine func() (string, error)

func (Module) ReadLine() ReadLine {
	var instance *readline.Instance
	return func() (string, error) {
		if instance == nil {
			var err error
			instance, err = readline.New("")
			if err != nil {
				return "", err
			}
		}
		return instance.Readline()
	}
}
