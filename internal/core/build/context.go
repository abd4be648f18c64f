package build

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/docker/docker/pkg/archive"

	"github.com/melih/projectdock/internal/config"
	"github.com/melih/projectdock/internal/core/domain"
)

// CreateBuildContext stages a full copy of workDir under the fixed context
// root name, writes the generated Dockerfile into the copy and packs the
// root into a fresh gzip-compressed tar file the engine accepts as a
// custom build context.
//
// The staging directory is removed on every path, success or failure. The
// returned archive is not: its ownership passes to the caller, who deletes
// it after the build.
func CreateBuildContext(workDir, manifest string) (archivePath string, err error) {
	info, err := os.Stat(workDir)
	if err != nil {
		return "", domain.NewExecutionError(domain.CodeIO, "assemble", "could not read project directory", err)
	}
	if !info.IsDir() {
		return "", domain.NewExecutionError(domain.CodeIO, "assemble",
			fmt.Sprintf("project path %s is not a directory", workDir), nil)
	}

	staging, err := os.MkdirTemp("", "build-ctx-staging-")
	if err != nil {
		return "", domain.NewExecutionError(domain.CodeIO, "assemble", "could not create staging directory", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(staging); rmErr != nil && err == nil {
			archivePath = ""
			err = domain.NewExecutionError(domain.CodeIO, "assemble", "could not remove staging directory", rmErr)
		}
	}()

	root := filepath.Join(staging, config.BuildContextRootName)
	if err := copyTree(workDir, root); err != nil {
		return "", domain.NewExecutionError(domain.CodeIO, "assemble", "could not copy project directory", err)
	}
	if err := os.WriteFile(filepath.Join(root, config.GeneratedDockerfileName), []byte(manifest), 0o644); err != nil {
		return "", domain.NewExecutionError(domain.CodeIO, "assemble", "could not write generated Dockerfile", err)
	}

	out, err := os.CreateTemp("", "build-ctx-*.tar.gz")
	if err != nil {
		return "", domain.NewExecutionError(domain.CodeIO, "assemble", "could not create context archive", err)
	}
	tarStream, err := archive.TarWithOptions(staging, &archive.TarOptions{
		IncludeFiles: []string{config.BuildContextRootName},
		Compression:  archive.Gzip,
	})
	if err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", domain.NewExecutionError(domain.CodeIO, "assemble", "could not archive build context", err)
	}
	defer tarStream.Close()

	if _, err := io.Copy(out, tarStream); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", domain.NewExecutionError(domain.CodeIO, "assemble", "could not write context archive", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", domain.NewExecutionError(domain.CodeIO, "assemble", "could not write context archive", err)
	}
	return out.Name(), nil
}

// copyTree replicates the src directory at dst, preserving regular-file
// modes and symlinks and failing on the first entry it cannot read.
// Irregular entries (sockets, devices) are skipped.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0o755)
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(p)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		case !d.Type().IsRegular():
			return nil
		}
		return copyFile(p, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, info.Mode().Perm())
}
