package opener

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shopdocs/launcher/internal/logging"
)

func TestCommands(t *testing.T) {
	paths := []string{"/a/1.PDF", "/a/2.PDF"}

	tests := []struct {
		name    string
		handler string
		goos    string
		want    [][]string
	}{
		{"linux default", "", "linux", [][]string{{"xdg-open", "/a/1.PDF"}, {"xdg-open", "/a/2.PDF"}}},
		{"darwin default", "", "darwin", [][]string{{"open", "/a/1.PDF"}, {"open", "/a/2.PDF"}}},
		{"windows default", "", "windows", [][]string{
			{"rundll32", "url.dll,FileProtocolHandler", "/a/1.PDF"},
			{"rundll32", "url.dll,FileProtocolHandler", "/a/2.PDF"},
		}},
		{"handler batches", `C:\Acrobat\Acrobat.exe`, "windows", [][]string{{`C:\Acrobat\Acrobat.exe`, "/a/1.PDF", "/a/2.PDF"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSystem(tt.handler, WithGOOS(tt.goos))
			if diff := cmp.Diff(tt.want, s.Commands(paths)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := NewSystem("").Commands(nil); got != nil {
		t.Errorf("expected no commands for no paths, got %v", got)
	}
}

func TestOpenStartsEveryCommand(t *testing.T) {
	var started [][]string
	s := NewSystem("", WithGOOS("linux"), WithLogger(logging.Discard()), WithStarter(func(cmd *exec.Cmd) error {
		started = append(started, cmd.Args)
		if cmd.Args[1] == "/bad.PDF" {
			return errors.New("boom")
		}
		return nil
	}))

	err := s.Open(context.Background(), []string{"/bad.PDF", "/good.PDF"})
	if err == nil {
		t.Fatal("expected start failure to be reported")
	}

	want := [][]string{{"xdg-open", "/bad.PDF"}, {"xdg-open", "/good.PDF"}}
	if diff := cmp.Diff(want, started); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	s := NewSystem("", WithLogger(logging.Discard()), WithStarter(func(*exec.Cmd) error {
		calls++
		return nil
	}))
	if err := s.Open(ctx, []string{"/x.PDF"}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no starts, got %d", calls)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(nil)
	if err := r.Open(context.Background(), []string{"/a.PDF"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Open(context.Background(), []string{"/b.PDF"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"/a.PDF", "/b.PDF"}, r.Opened()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	failing := NewRecorder(errors.New("no viewer"))
	if err := failing.Open(context.Background(), []string{"/a.PDF"}); err == nil {
		t.Error("expected configured error")
	}
}
