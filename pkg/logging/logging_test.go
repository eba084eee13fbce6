package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chessboard.log")
	for i := 0; i < 2; i++ {
		log, closer, err := Init(path, "client", false)
		if err != nil {
			t.Fatal(err)
		}
		log.Info().Int("run", i).Msg("start")
		log.Debug().Msg("hidden")
		if err := closer.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("log has %d lines:\n%s", len(lines), data)
	}
	var ev map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev["component"] != "client" || ev["message"] != "start" || ev["run"] != 1.0 {
		t.Errorf("event %v", ev)
	}
}

func TestInitBadPath(t *testing.T) {
	if _, _, err := Init(filepath.Join(t.TempDir(), "missing", "x.log"), "client", false); err == nil {
		t.Errorf("expected an error")
	}
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "board", true)
	log.Debug().Msg("drag")
	if !strings.Contains(buf.String(), `"level":"debug"`) {
		t.Errorf("debug event missing: %s", buf.String())
	}
}
