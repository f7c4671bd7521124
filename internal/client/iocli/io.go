package iocli

//go:generate moq -out io_mock.go . IO

// IO is the terminal used by the CLI: output, line input and hidden input
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
