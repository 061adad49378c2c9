package pause

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// Wait blocks until the user presses a key. On a real terminal stdin is
// switched to raw mode so a single keystroke suffices, matching the
// "press any key" behavior of a console window. When stdin is not a
// terminal (piped input, CI) a full line is consumed instead.
func Wait() {
	fmt.Println("Press any key to close this window...")

	fd := int(os.Stdin.Fd())
	if terminal.IsTerminal(fd) {
		state, err := terminal.MakeRaw(fd)
		if err == nil {
			defer terminal.Restore(fd, state)
			buf := make([]byte, 1)
			os.Stdin.Read(buf)
			return
		}
	}

	readLine(os.Stdin)
}

func readLine(r io.Reader) {
	reader := bufio.NewReader(r)
	reader.ReadString('\n')
}
