package main

import (
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

func ensureModPath() error {
	_, err := os.ReadFile("go.mod")
	if err != nil {
		return err
	}
	return nil
}

// findTestData returns the absolute path of every package directory holding
// a testdata directory.
func findTestData(root string) ([]string, error) {
	var paths []string

	err := fs.WalkDir(os.DirFS(root), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		switch d.Name() {
		case "testdata":
			paths = append(paths, filepath.Join(root, filepath.Dir(path)))
			return fs.SkipDir
		case "_examples", ".git", "vendor":
			return fs.SkipDir
		}

		return nil
	})
	if err != nil {
		return paths, err
	}

	return paths, nil
}

func updateTestData(dir string) error {
	cmd := exec.Command("go", "test", "-v", "-timeout", "2m", "-run", "Golden", ".", "-update")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer logger.Sync()

	if err := ensureModPath(); err != nil {
		logger.Fatal("must be run from the module root", zap.Error(err))
	}

	root, err := os.Getwd()
	if err != nil {
		logger.Fatal("getting working directory", zap.Error(err))
	}

	paths, err := findTestData(root)
	if err != nil {
		logger.Fatal("finding testdata", zap.Error(err))
	}

	var hadError bool

	for _, path := range paths {
		logger.Info("updating testdata", zap.String("path", path))

		if err := updateTestData(path); err != nil {
			hadError = true
			logger.Error("updating testdata", zap.String("path", path), zap.Error(err))
		}
	}

	if hadError {
		logger.Fatal("some error(s) occurred in some of the tests")
	}

	logger.Info("successfully updated testdata!", zap.Int("packages", len(paths)))
}
