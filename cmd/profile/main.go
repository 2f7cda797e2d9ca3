//go:build profiling
// +build profiling

// Command profile exercises cache scanning under a profiler, against a
// synthetic hub-layout cache tree. Build with -tags profiling.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"time"

	"github.com/felixge/fgprof"
	"github.com/grafana/pyroscope-go"

	"github.com/meigma/hfcache"
)

type profileKind string

const (
	profileCPU   profileKind = "cpu"
	profileFG    profileKind = "fgprof"
	profileTrace profileKind = "trace"
	profileNone  profileKind = "none"
)

func main() {
	var (
		dir      = flag.String("dir", "", "cache directory to scan (generated when empty)")
		repos    = flag.Int("repos", 200, "repositories to generate")
		files    = flag.Int("files", 20, "files per generated snapshot")
		repeat   = flag.Int("repeat", 10, "number of scan iterations")
		profile  = flag.String("profile", "cpu", "profile type: cpu, fgprof, trace, none")
		outDir   = flag.String("out", "profiles", "output directory for profiles")
		label    = flag.String("label", "", "label suffix for profile files")
		pyroAddr = flag.String("pyroscope", "", "Pyroscope server URL (enables streaming, disables local profiles)")
	)
	flag.Parse()

	profileKindValue := profileKind(strings.ToLower(*profile))
	if !isValidProfile(profileKindValue) {
		log.Fatalf("invalid profile %q (expected cpu, fgprof, trace, none)", *profile)
	}

	// When Pyroscope is enabled, stream profiles instead of writing locally
	var pyroProfiler *pyroscope.Profiler
	if *pyroAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "hfcache.scan",
			ServerAddress:   *pyroAddr,
		})
		if err != nil {
			log.Fatalf("start pyroscope: %v", err)
		}
		pyroProfiler = profiler
		profileKindValue = profileNone
	}

	cacheDir := *dir
	if cacheDir == "" {
		generated, err := generateCache(*repos, *files)
		if err != nil {
			log.Fatalf("generate cache: %v", err)
		}
		defer os.RemoveAll(generated)
		cacheDir = generated
	}

	stop, err := startProfile(profileKindValue, *outDir, *label)
	if err != nil {
		log.Fatalf("start profile: %v", err)
	}

	loc := hfcache.New(hfcache.WithLogger(slog.New(slog.DiscardHandler)))

	start := time.Now()
	var totalSize int64
	for i := range *repeat {
		info, err := loc.ScanDir(cacheDir)
		if err != nil {
			log.Fatalf("scan iteration %d: %v", i+1, err)
		}
		totalSize = info.TotalSize
	}
	elapsed := time.Since(start)

	if err := stop(); err != nil {
		log.Fatalf("stop profile: %v", err)
	}
	if pyroProfiler != nil {
		_ = pyroProfiler.Stop()
	}

	fmt.Printf("scanned %s x%d in %s (%d bytes inventoried)\n",
		cacheDir, *repeat, elapsed, totalSize)
}

func isValidProfile(k profileKind) bool {
	switch k {
	case profileCPU, profileFG, profileTrace, profileNone:
		return true
	default:
		return false
	}
}

// startProfile begins the selected profile and returns a stop function.
func startProfile(kind profileKind, outDir, label string) (func() error, error) {
	if kind == profileNone {
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, err
	}

	name := string(kind)
	if label != "" {
		name += "-" + label
	}
	out, err := os.Create(filepath.Join(outDir, name+".out"))
	if err != nil {
		return nil, err
	}

	switch kind {
	case profileCPU:
		if err := pprof.StartCPUProfile(out); err != nil {
			out.Close()
			return nil, err
		}
		return func() error {
			pprof.StopCPUProfile()
			return out.Close()
		}, nil
	case profileFG:
		stop := fgprof.Start(out, fgprof.FormatPprof)
		return func() error {
			if err := stop(); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		}, nil
	case profileTrace:
		if err := trace.Start(out); err != nil {
			out.Close()
			return nil, err
		}
		return func() error {
			trace.Stop()
			return out.Close()
		}, nil
	default:
		out.Close()
		return nil, fmt.Errorf("unsupported profile kind %q", kind)
	}
}

// generateCache builds a synthetic hub-layout cache tree under a temp
// directory: repos repositories, each with a refs/main pointer, one
// snapshot holding files regular files, and matching blob entries.
func generateCache(repos, files int) (string, error) {
	root, err := os.MkdirTemp("", "hfcache-profile-")
	if err != nil {
		return "", err
	}

	for i := range repos {
		oid := hexDigest(fmt.Sprintf("snapshot-%d", i))
		repoDir := filepath.Join(root, fmt.Sprintf("models--bench--repo%04d", i))

		if err := os.MkdirAll(filepath.Join(repoDir, "refs"), 0o750); err != nil {
			return "", err
		}
		if err := os.WriteFile(filepath.Join(repoDir, "refs", "main"), []byte(oid+"\n"), 0o600); err != nil {
			return "", err
		}

		snapDir := filepath.Join(repoDir, "snapshots", oid)
		blobDir := filepath.Join(repoDir, "blobs")
		if err := os.MkdirAll(snapDir, 0o750); err != nil {
			return "", err
		}
		if err := os.MkdirAll(blobDir, 0o750); err != nil {
			return "", err
		}

		for j := range files {
			content := []byte(fmt.Sprintf("payload %d/%d", i, j))
			name := fmt.Sprintf("file%03d.bin", j)
			if err := os.WriteFile(filepath.Join(snapDir, name), content, 0o600); err != nil {
				return "", err
			}
			if err := os.WriteFile(filepath.Join(blobDir, hexDigest(name)), content, 0o600); err != nil {
				return "", err
			}
		}
	}

	return root, nil
}

func hexDigest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
