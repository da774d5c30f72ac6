package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/OneOfOne/xxhash"
)

// readLine consumes whitespace-separated words until one closes an item
// with "}". Nothing to read means the writer may still be appending, so the
// scan waits and retries instead of giving up at EOF.
func readLine(input io.Reader) ([]string, error) {
	var line []string
	for {
		var oneWord string
		n, err := fmt.Fscan(input, &oneWord)
		if err != nil && err != io.EOF {
			return nil, err
		}

		if n != 0 {
			line = append(line, oneWord)
			// Item ends with }
			if strings.Contains(oneWord, "}") {
				return line, nil
			}
		} else {
			time.Sleep(time.Second)
		}
	}
}

// SubscribeToFileInput turns the input stream into a channel of re-joined
// item lines. Read failures end the subscription through the error channel.
func SubscribeToFileInput(input io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		for {
			words, err := readLine(input)
			if err != nil {
				errChan <- err
				return
			}
			lines <- strings.Join(words, " ")
		}
	}()

	return lines, errChan
}

func setInterval(function func(), intervalSec time.Duration) *time.Ticker {
	ticker := time.NewTicker(intervalSec * time.Second)
	go func() {
		for {
			<-ticker.C
			function()
		}
	}()
	return ticker
}

// createDeduplicationId builds an SQS deduplication id from the send time
// and a checksum of the payload. 19 digits of nanoseconds plus 16 hex
// digits keeps it well under the 128 character limit.
func createDeduplicationId(data string) string {
	return fmt.Sprintf("%d-%016x", time.Now().UnixNano(), xxhash.ChecksumString64(data))
}
