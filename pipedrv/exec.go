package pipedrv

import "os/exec"

func execCommand(command []string, args ...string) *exec.Cmd {
	argv := append(append([]string{}, command[1:]...), args...)
	return exec.Command(command[0], argv...)
}
