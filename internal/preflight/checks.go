package preflight

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"pagegen/internal/config"
)

// CheckReadableDirectory verifies that the directory exists and can be read
// and traversed.
func CheckReadableDirectory(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckWritableDirectory verifies that the directory is writable. A missing
// directory passes when its closest existing ancestor permits creating it,
// since both the pages and log directories are created on demand.
func CheckWritableDirectory(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			base := nearestExisting(path)
			if err := unix.Access(base, unix.W_OK|unix.X_OK); err != nil {
				return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, base, err)}
			}
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (absent, will be created)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDescriptors scans the assets tree and reports how many descriptor
// files a build would pick up. Zero descriptors still passes; the detail
// flags that a build would produce no pages.
func CheckDescriptors(cfg *config.Config) Result {
	const name = "Descriptors"

	count := 0
	err := filepath.WalkDir(cfg.Paths.AssetsDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && entry.Name() == cfg.Generator.DescriptorName {
			count++
		}
		return nil
	})
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("cannot scan %s (%v)", cfg.Paths.AssetsDir, err)}
	}
	if count == 0 {
		return Result{Name: name, Passed: true, Detail: "none found (a build would produce no pages)"}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d found", count)}
}

// nearestExisting walks up from path to the first component that exists.
func nearestExisting(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}
