// Package convert implements the "convert" command: it finds articles in
// files, directories and zip archives and writes converted document graphs.
package convert

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"lensconv/archive"
	"lensconv/config"
	"lensconv/content"
	"lensconv/convert/output"
	"lensconv/state"
)

// Run is the "convert" command action.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src, dst, err := sourceAndDestination(cmd, log)
	if err != nil {
		return err
	}
	if err := configureEnv(cmd, env, log); err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// sourceAndDestination returns absolute paths from positional arguments.
// Destination defaults to working directory.
func sourceAndDestination(cmd *cli.Command, log *zap.Logger) (src, dst string, err error) {
	args := cmd.Args()
	if args.Get(0) == "" {
		return "", "", errors.New("no input source has been specified")
	}
	if args.Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", args.Slice()[2:]))
	}

	if src, err = filepath.Abs(args.Get(0)); err != nil {
		return "", "", err
	}
	if dst = args.Get(1); dst == "" {
		if dst, err = os.Getwd(); err != nil {
			return "", "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return "", "", err
	}
	return src, dst, nil
}

// configureEnv moves command options into program environment. Options
// given on command line win over configuration.
func configureEnv(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) error {
	format, err := config.ParseOutputFmt(cmd.String("to"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to json", zap.Error(err))
		format = config.OutputFmtJson
	}
	env.Format = format

	env.Publisher, env.PublisherForced = env.Cfg.Document.Publishers.ForcedPublisher()
	if name := cmd.String("publisher"); name != "" {
		p, err := config.ParsePublisher(name)
		if err != nil {
			return fmt.Errorf("unknown publisher requested: %w", err)
		}
		env.Publisher, env.PublisherForced = p, true
	}
	if env.PublisherForced {
		log.Debug("Forcing node enhancements", zap.Stringer("publisher", env.Publisher))
	}

	env.NoDirs = cmd.Bool("nodirs")
	env.Overwrite = cmd.Bool("overwrite")

	// zip does not record name encoding, old archives may need a code page
	env.CodePage = nil
	if cp := cmd.String("force-zip-cp"); cp != "" {
		enc, err := ianaindex.IANA.Encoding(cp)
		if err != nil || enc == nil {
			log.Warn("Unknown character set specification, ignoring", zap.String("charset", cp), zap.Error(err))
			return nil
		}
		name, _ := ianaindex.IANA.Name(enc)
		log.Debug("Non UTF-8 names in archives will be decoded", zap.String("charset", name))
		env.CodePage = enc
	}
	return nil
}

// splitExisting separates the longest existing prefix of path from the rest,
// which could only be a location inside of an archive.
func splitExisting(path string) (head, rest string, fi os.FileInfo, err error) {
	for head = path; ; {
		if fi, err = os.Stat(head); err == nil {
			rest = strings.TrimPrefix(strings.TrimPrefix(path, head), string(filepath.Separator))
			return head, rest, fi, nil
		}
		parent := filepath.Dir(head)
		if parent == head {
			return "", "", nil, fmt.Errorf("input source was not found (%s)", path)
		}
		head = parent
	}
}

// process converts whatever src points to: directory, archive (possibly with
// path inside of it) or single article.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	head, rest, fi, err := splitExisting(src)
	if err != nil {
		return err
	}

	if fi.IsDir() {
		if rest != "" {
			return fmt.Errorf("input source was not found (%s) => (%s)", head, rest)
		}
		if err := processDir(ctx, head, dst, log); err != nil {
			return fmt.Errorf("unable to process directory: %w", err)
		}
		return nil
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", head)
	}

	isArchive, err := isArchiveFile(head)
	if err != nil {
		return fmt.Errorf("unable to check archive type: %w", err)
	}
	if isArchive {
		if err := processArchive(ctx, head, rest, "", dst, log); err != nil {
			return fmt.Errorf("unable to process archive: %w", err)
		}
		return nil
	}

	isArticle, enc, err := isArticleFile(head)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if !isArticle || rest != "" {
		return fmt.Errorf("input was not recognized as JATS article (%s)", head)
	}
	convertFile(ctx, head, filepath.Base(head), enc, dst, log)
	return nil
}

// convertFile opens article file and converts it. Failures are logged so
// callers could continue with other articles.
func convertFile(ctx context.Context, path, src string, enc srcEncoding, dst string, log *zap.Logger) {
	file, err := os.Open(path)
	if err != nil {
		log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		return
	}
	defer file.Close()

	if err := processArticle(ctx, selectReader(file, enc), src, dst, log); err != nil {
		log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
	}
}

// processDir collects regular files under dir, symbolic links are not
// followed, and processes them in natural order.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(paths))

	found := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if processDirEntry(ctx, path, rel, dst, log) {
			found++
		}
	}
	if found == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return nil
}

// processDirEntry handles single file found in directory, rel is its path
// relative to the directory. Returns false when file was neither article nor
// archive.
func processDirEntry(ctx context.Context, path, rel, dst string, log *zap.Logger) bool {
	isArchive, err := isArchiveFile(path)
	if err != nil {
		log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
		return false
	}
	if isArchive {
		if err := processArchive(ctx, path, "", filepath.Dir(rel), dst, log); err != nil {
			log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
		}
		return true
	}

	isArticle, enc, err := isArticleFile(path)
	switch {
	case err != nil:
		log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
		return false
	case !isArticle:
		log.Debug("Skipping file, not recognized as article or archive", zap.String("file", path))
		return false
	}
	convertFile(ctx, path, rel, enc, dst, log)
	return true
}

// processArchive converts articles located under pathIn inside of archive.
// Results go under pathOut in destination.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) error {
	cp := state.EnvFromContext(ctx).CodePage

	found := 0
	err := archive.Walk(ctx, path, pathIn, func(name string, f *zip.File) error {
		flog := log.With(zap.String("archive", name), zap.String("file", f.Name))

		isArticle, enc, err := isArticleInArchive(f)
		if err != nil {
			flog.Warn("Skipping file in archive", zap.Error(err))
			return nil
		}
		if !isArticle {
			flog.Debug("Skipping file, not recognized as article")
			return nil
		}
		found++

		r, err := f.Open()
		if err != nil {
			flog.Error("Unable to process file in archive", zap.Error(err))
			return nil
		}
		defer r.Close()

		src := filepath.Join(pathOut, filepath.FromSlash(entryName(f, cp, flog)))
		if err := processArticle(ctx, selectReader(r, enc), src, dst, flog); err != nil {
			flog.Error("Unable to process file in archive", zap.Error(err))
		}
		return nil
	})
	if err == nil && found == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return err
}

// entryName returns archive entry name, decoded with cp when entry is not
// marked as UTF-8.
func entryName(f *zip.File, cp encoding.Encoding, log *zap.Logger) string {
	if cp == nil || !f.NonUTF8 {
		return f.Name
	}
	name, err := cp.NewDecoder().String(f.Name)
	if err != nil {
		charset, _ := ianaindex.IANA.Name(cp)
		log.Warn("Unable to decode archive entry name", zap.String("charset", charset), zap.Error(err))
		return f.Name
	}
	return name
}

// processArticle converts single article read from r. src is the article
// path relative to what was requested on command line (base name for a
// single file) and drives output naming. dst is destination directory.
func processArticle(ctx context.Context, r io.Reader, src, dst string, log *zap.Logger) (err error) {
	env := state.EnvFromContext(ctx)

	var refID, outputName string

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		if p := recover(); p != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", p), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("conversion panic: %v", p)
			return
		}
		if err == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("ref_id", refID))
		}
	}(time.Now())

	c, err := content.Prepare(ctx, r, src, log)
	if err != nil {
		return fmt.Errorf("unable to convert article (%s): %w", src, err)
	}
	refID = c.Document.ID()
	for _, g := range c.Result.Gaps {
		log.Debug("Coverage gap", zap.String("tag", g.Element), zap.String("path", g.Path), zap.String("reason", g.Message))
	}

	outputName = buildOutputPath(c, src, dst, env.Format, env)
	if err := prepareDestination(outputName, env.Overwrite, log); err != nil {
		return err
	}

	gen, err := output.New(env.Format, log)
	if err != nil {
		return err
	}
	if err := gen.Generate(ctx, c, outputName); err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}

	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", config.CleanFileName(refID), filepath.Ext(outputName)), outputName)
	}
	return nil
}

// prepareDestination makes sure name could be written: removes previous
// result when overwrite is allowed or creates missing directories.
func prepareDestination(name string, overwrite bool, log *zap.Logger) error {
	_, err := os.Stat(name)
	switch {
	case err == nil:
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		return os.Remove(name)
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}
