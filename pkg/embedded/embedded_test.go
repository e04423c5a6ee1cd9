package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// reset 重置包状态，避免测试之间相互影响
func reset() {
	dataFS = nil
	initialized = false
}

func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}
	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

func TestReadFileNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile("data/game.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	reset()
	defer reset()

	Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("hitPause: 0.5\n")},
	})

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/game.yaml", want: "hitPause: 0.5\n"},
		{name: "带./前缀", path: "./data/game.yaml", want: "hitPause: 0.5\n"},
		{name: "未知前缀", path: "assets/game.yaml", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, string(got))
			}
		})
	}
}

func TestExists(t *testing.T) {
	reset()
	defer reset()

	if Exists("data/game.yaml") {
		t.Error("Exists should be false before Init()")
	}

	Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("{}")},
	})
	if !Exists("data/game.yaml") {
		t.Error("Expected data/game.yaml to exist")
	}
	if Exists("data/other.yaml") {
		t.Error("Expected data/other.yaml to be missing")
	}
}
