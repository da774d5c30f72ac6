package client

import (
	"fmt"
	"strings"
	"testing"

	"github.com/OneOfOne/xxhash"
)

func Test_CreateDeduplicationId(t *testing.T) {
	id := createDeduplicationId(`{"Action":"PushItem","Value":"a"}`)

	if len(id) == 0 || len(id) > 128 {
		t.Fatalf("Id length %d is outside the SQS limit", len(id))
	}

	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		t.Fatalf("Id %q is not <timestamp>-<checksum>", id)
	}

	wantSum := fmt.Sprintf("%016x", xxhash.ChecksumString64(`{"Action":"PushItem","Value":"a"}`))
	if parts[1] != wantSum {
		t.Errorf("Checksum part is %q, want %q", parts[1], wantSum)
	}
}

func Test_ReadLine(t *testing.T) {
	input := strings.NewReader(`client1 {"Action":"PushItem","Value":"a"}` + "\n")

	words, err := readLine(input)
	if err != nil {
		t.Fatalf("readLine failed: %s", err)
	}
	if len(words) != 2 {
		t.Fatalf("Got %d words, want 2", len(words))
	}
	if words[0] != "client1" {
		t.Errorf("Bad client id word %q", words[0])
	}
	if words[1] != `{"Action":"PushItem","Value":"a"}` {
		t.Errorf("Bad item word %q", words[1])
	}
}

func Test_ReadLine_SplitItem(t *testing.T) {
	input := strings.NewReader(`client1 {"Action": "PushItem", "Value": "a"}` + "\n")

	words, err := readLine(input)
	if err != nil {
		t.Fatalf("readLine failed: %s", err)
	}
	if !strings.Contains(words[len(words)-1], "}") {
		t.Error("Line does not end at the item's closing brace")
	}
	if got := strings.Join(words[1:], " "); got != `{"Action": "PushItem", "Value": "a"}` {
		t.Errorf("Re-joined item %q does not match the input", got)
	}
}

func Test_SubscribeToFileInput(t *testing.T) {
	input := strings.NewReader(
		`client1 {"Action":"PushItem","Value":"a"}` + "\n" +
			`client2 {"Action":"PopItem"}` + "\n")

	lines, errChan := SubscribeToFileInput(input)

	select {
	case line := <-lines:
		if line != `client1 {"Action":"PushItem","Value":"a"}` {
			t.Errorf("Bad first line %q", line)
		}
	case err := <-errChan:
		t.Fatalf("Unexpected error: %s", err)
	}

	select {
	case line := <-lines:
		if line != `client2 {"Action":"PopItem"}` {
			t.Errorf("Bad second line %q", line)
		}
	case err := <-errChan:
		t.Fatalf("Unexpected error: %s", err)
	}
}
