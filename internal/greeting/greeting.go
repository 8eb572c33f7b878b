package greeting

import "io"

// Message is the fixed greeting printed by the hello command.
const Message = "Hello, World!"

// Write emits Message followed by a newline to w in a single write.
func Write(w io.Writer) error {
	_, err := io.WriteString(w, Message+"\n")
	return err
}
