package main

import (
	"github.com/goccy/go-yaml"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

// LoadYAML reads a YAML file into v. Fields missing from the file keep the
// values v already had.
func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	if err != nil {
		return
	}
	Check(yaml.Unmarshal(data, v))
}

func CloseFile(f fs.File) {
	Check(f.Close())
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

func GetFiles(fsys FS, dir string, pattern string) []string {
	var files []string
	entries, err := fsys.ReadDir(dir)
	Check(err)
	for _, entry := range entries {
		matched, err := filepath.Match(pattern, entry.Name())
		Check(err)
		if matched {
			files = append(files, dir+"/"+entry.Name())
		}
	}
	return files
}

// FolderWatcher tells if any file in a folder was modified since the last
// time it was asked.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
