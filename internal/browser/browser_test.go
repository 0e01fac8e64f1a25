package browser

import (
	"errors"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"xdg-open", "https://example.com/jobs"}},
		{"darwin", []string{"open", "https://example.com/jobs"}},
		{"windows", []string{"rundll32", "url.dll,FileProtocolHandler", "https://example.com/jobs"}},
	}
	for _, tt := range tests {
		cmd, err := command(tt.goos, "https://example.com/jobs")
		if err != nil {
			t.Fatalf("%s: %v", tt.goos, err)
		}
		if len(cmd.Args) != len(tt.want) {
			t.Fatalf("%s: args = %v, want %v", tt.goos, cmd.Args, tt.want)
		}
		for i := range tt.want {
			if cmd.Args[i] != tt.want[i] {
				t.Errorf("%s: args = %v, want %v", tt.goos, cmd.Args, tt.want)
			}
		}
	}
}

func TestCommand_RejectsNonWeb(t *testing.T) {
	for _, u := range []string{"file:///etc/passwd", "javascript:alert(1)", "not a url", "https://"} {
		if _, err := command("linux", u); !errors.Is(err, ErrUnsupportedURL) {
			t.Errorf("command(%q) err = %v, want ErrUnsupportedURL", u, err)
		}
	}
}
