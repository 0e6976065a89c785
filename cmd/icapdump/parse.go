// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/intuitivelabs/icapsp"
	"github.com/intuitivelabs/icapsp/config"
	"github.com/intuitivelabs/icapsp/internal/sectionpool"
	"github.com/intuitivelabs/icapsp/logging"
)

// sections is shared across the per-file goroutines runParse spawns:
// each one takes pooled, owned copies of its message's encapsulated
// sections, logs their kind and size, and hands the copies back to the
// pool when parseOne returns.
var sections = sectionpool.New()

var (
	configPath     string
	headerCapacity int
	fromStdin      bool
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Parse one or more ICAP messages and print their decoded structure",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&configPath, "config", "", "Configuration file path")
	parseCmd.Flags().IntVar(&headerCapacity, "header-capacity", 0,
		"Header array capacity (0: use config/default)")
	parseCmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read a single message from stdin")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadPath(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if headerCapacity > 0 {
		cfg.HeaderCapacity = headerCapacity
	}

	log := logging.New(cfg.Logging)
	defer log.Sync() //nolint:errcheck

	if fromStdin {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return parseOne(log, cfg, "<stdin>", buf)
	}

	if len(args) == 0 {
		return fmt.Errorf("no input files given (use --stdin or pass FILE...)")
	}

	g, _ := errgroup.WithContext(context.Background())
	var mu sync.Mutex
	var errs *multierror.Error

	for _, path := range args {
		path := path
		g.Go(func() error {
			buf, err := os.ReadFile(path)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
				mu.Unlock()
				return nil
			}
			if err := parseOne(log, cfg, path, buf); err != nil {
				mu.Lock()
				errs = multierror.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if errs != nil {
		return errs.ErrorOrNil()
	}
	return nil
}

// parseOne parses a single ICAP message, tagging it with a correlation
// ID for the log fields. Messages are distinguished by their leading
// bytes: a response starts with the literal "ICAP/", a request starts
// with a method token.
func parseOne(log *zap.Logger, cfg config.Config, name string, buf []byte) error {
	id := uuid.New()
	logFields := []zap.Field{
		zap.String("msg_id", id.String()),
		zap.String("file", name),
	}

	if bytes.HasPrefix(buf, []byte("ICAP/")) {
		r := icapsp.NewResponse(make([]icapsp.Header, 0, cfg.HeaderCapacity))
		st, err := icapsp.ParseResponse(buf, r)
		if err != nil {
			log.Warn("parse failed", append(logFields, zap.String("kind", "response"), zap.Error(err))...)
			return fmt.Errorf("%s: %w", name, err)
		}
		if st.IsPartial() {
			log.Warn("incomplete response", logFields...)
			return fmt.Errorf("%s: incomplete response", name)
		}
		secFields, release := copySections(r.EncapsulatedSections)
		defer release()
		log.Info("parsed response", append(logFields,
			zap.String("kind", "response"),
			zap.Int("code", r.Code),
			zap.Int("bytes", st.Value()),
			zap.Array("sections", secFields))...)
		return nil
	}

	r := icapsp.NewRequest(make([]icapsp.Header, 0, cfg.HeaderCapacity))
	st, err := icapsp.ParseRequest(buf, r)
	if err != nil {
		log.Warn("parse failed", append(logFields, zap.String("kind", "request"), zap.Error(err))...)
		return fmt.Errorf("%s: %w", name, err)
	}
	if st.IsPartial() {
		log.Warn("incomplete request", logFields...)
		return fmt.Errorf("%s: incomplete request", name)
	}
	secFields, release := copySections(r.EncapsulatedSections)
	defer release()
	log.Info("parsed request", append(logFields,
		zap.String("kind", "request"),
		zap.String("method", r.Method),
		zap.Int("bytes", st.Value()),
		zap.Array("sections", secFields))...)
	return nil
}

// sectionSummary is the pooled, owned copy of one encapsulated section,
// kept around only long enough to be marshaled into a log field.
type sectionSummary struct {
	kind  string
	bytes int
}

func (s sectionSummary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", s.kind)
	enc.AddInt("bytes", s.bytes)
	return nil
}

type sectionSummaries []sectionSummary

func (s sectionSummaries) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, summary := range s {
		if err := enc.AppendObject(summary); err != nil {
			return err
		}
	}
	return nil
}

// copySections takes a pooled, owned copy of every encapsulated
// section so the log field built from it remains valid after
// parseOne's input buffer is discarded. release must be called once
// the field has been consumed (log.Info marshals it synchronously, so
// calling release via defer in the caller is safe).
func copySections(secs map[icapsp.SectionKind][]byte) (sectionSummaries, func()) {
	summaries := make(sectionSummaries, 0, len(secs))
	releases := make([]func(), 0, len(secs))
	for kind, sec := range secs {
		copied, release := sections.Copy(sec)
		releases = append(releases, release)
		summaries = append(summaries, sectionSummary{kind: kind.String(), bytes: len(copied)})
	}
	return summaries, func() {
		for _, release := range releases {
			release()
		}
	}
}
