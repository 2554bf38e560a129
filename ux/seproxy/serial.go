package seproxy

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"nanoux/ux/seph"
)

// ParseCommandLine decodes one host command line: hex digits, optionally
// separated by spaces. Blank lines and lines starting with '#' yield nil.
func ParseCommandLine(line string) ([]byte, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	apdu, err := hex.DecodeString(strings.ReplaceAll(line, " ", ""))
	if err != nil {
		return nil, fmt.Errorf("seproxy: command %q: %w", line, err)
	}
	if len(apdu) > seph.MaxFrameBytes-seph.HeaderBytes {
		return nil, fmt.Errorf("seproxy: command of %d bytes: %w", len(apdu), seph.ErrFrameTooLarge)
	}
	return apdu, nil
}

// ReadCommands injects every command line read from r until EOF. Bad lines
// are logged and skipped.
func (p *Proxy) ReadCommands(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		apdu, err := ParseCommandLine(sc.Text())
		if err != nil {
			p.log.WriteLineString(err.Error())
			continue
		}
		if apdu == nil {
			continue
		}
		if err := p.InjectCommand(apdu); err != nil {
			p.log.WriteLineString(err.Error())
		}
	}
	return sc.Err()
}

// WriteResponse sends a response to the host as one hex line.
func WriteResponse(w io.Writer, resp []byte) error {
	_, err := io.WriteString(w, strings.ToUpper(hex.EncodeToString(resp))+"\n")
	return err
}
