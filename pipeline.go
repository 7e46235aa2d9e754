package spritec

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const scanWorkers = 10

func (c *Compiler) findSheets(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if filepath.Ext(file) != ".png" {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (c *Compiler) sheetWorker(ctx context.Context, in <-chan string, opts Options) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			output := strings.TrimSuffix(file, filepath.Ext(file)) + ".h"

			// Grid and regions are re-detected per sheet; each compile
			// owns its own raster so workers need no coordination.
			res, err := c.CompileSheet(file, output, nil, opts)
			if err != nil {
				errc <- err
				return
			}

			c.logger.Printf("compiled \"%s\" to \"%s\", %d sprite(s), %d color(s)\n", file, output, res.Sprites, res.Colors)

			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}()
	return errc, nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

// Scan walks path compiling every sprite sheet found into a sibling
// header file, inferring grid and regions per sheet. The per-sheet
// grid and mode settings of opts apply to every sheet.
func (c *Compiler) Scan(path string, opts Options) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	sheets, errc, err := c.findSheets(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < scanWorkers; i++ {
		errc, err := c.sheetWorker(ctx, sheets, opts)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
