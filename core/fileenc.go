package core

import (
	"encoding/base64"
	"io"
)

// FileEncoding is the eventual result of an EncodeFile call.
type FileEncoding struct {
	Content string // base64
	Err     error
}

// EncodeFile asynchronously encodes r to base64 and delivers the result on
// the returned channel. There is no cancellation; a superseding call simply
// produces a second independent result and the caller keeps the one it wants.
func EncodeFile(r io.Reader) <-chan FileEncoding {
	out := make(chan FileEncoding, 1)
	go func() {
		data, err := io.ReadAll(r)
		if err != nil {
			out <- FileEncoding{Err: err}
			return
		}
		out <- FileEncoding{Content: base64.StdEncoding.EncodeToString(data)}
	}()
	return out
}
