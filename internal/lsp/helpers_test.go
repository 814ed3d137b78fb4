package lsp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"
)

// frames encodes requests and notifications as one framed input stream.
func frames(t *testing.T, msgs ...map[string]any) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, m := range msgs {
		m["jsonrpc"] = "2.0"
		payload, err := json.Marshal(m)
		if err != nil {
			t.Fatal(err)
		}
		if err := writeMessage(&buf, payload); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func request(id int, method string, params any) map[string]any {
	return map[string]any{"id": id, "method": method, "params": params}
}

func notification(method string, params any) map[string]any {
	return map[string]any{"method": method, "params": params}
}

// readAll decodes every framed message the server wrote.
func readAll(t *testing.T, out []byte) []rpcMessage {
	t.Helper()
	r := bufio.NewReader(bytes.NewReader(out))
	var msgs []rpcMessage
	for {
		payload, err := readMessage(r)
		if errors.Is(err, io.EOF) {
			return msgs
		}
		if err != nil {
			t.Fatalf("read message: %v", err)
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatalf("decode message: %v", err)
		}
		msgs = append(msgs, msg)
	}
}

// responseTo finds the response with the given numeric id.
func responseTo(t *testing.T, msgs []rpcMessage, id int) rpcMessage {
	t.Helper()
	want, _ := json.Marshal(id)
	for _, m := range msgs {
		if m.Method == "" && bytes.Equal(m.ID, want) {
			return m
		}
	}
	t.Fatalf("no response with id %d in %d messages", id, len(msgs))
	return rpcMessage{}
}

func docParams(uri, text string, version int) didOpenTextDocumentParams {
	return didOpenTextDocumentParams{TextDocument: textDocumentItem{
		URI:        uri,
		LanguageID: "clojure",
		Version:    version,
		Text:       text,
	}}
}
