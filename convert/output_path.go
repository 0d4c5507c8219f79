package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"lensconv/config"
	"lensconv/content"
	"lensconv/state"
)

// buildOutputPath decides where result of converting src goes. Source
// directories are mirrored under dst unless NoDirs is set. Name comes from
// output name template when one is configured and expands to something
// usable, from the source file name otherwise.
func buildOutputPath(c *content.Content, src, dst string, format config.OutputFmt, env *state.LocalEnv) string {
	dir := determineOutputDir(src, dst, env)
	if env.Cfg.Document.OutputNameTemplate != "" {
		if name := expandOutputNameTemplate(c, format, env); name != "" {
			if path := assemblePathWithSubdirs(dir, name, format, env); path != dir {
				return path
			}
		}
	}
	return filepath.Join(dir, buildDefaultFileName(src, format, env))
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func buildDefaultFileName(src string, format config.OutputFmt, env *state.LocalEnv) string {
	base := filepath.Base(src)
	return cleanPathSegment(strings.TrimSuffix(base, filepath.Ext(base)), env) + format.Ext()
}

func expandOutputNameTemplate(c *content.Content, format config.OutputFmt, env *state.LocalEnv) string {
	name, err := expandTemplate(c, config.OutputNameTemplateFieldName, env.Cfg.Document.OutputNameTemplate, format)
	if err != nil {
		env.Log.Warn("Output name template failed, using source name", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(name)
}

// assemblePathWithSubdirs places name under dir. Separators in name make
// subdirectories, last segment gets extension of the format.
func assemblePathWithSubdirs(dir, name string, format config.OutputFmt, env *state.LocalEnv) string {
	segments := splitAndCleanPath(name)
	if len(segments) == 0 {
		return dir
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, dir)
	for _, seg := range segments {
		parts = append(parts, cleanPathSegment(seg, env))
	}
	parts[len(parts)-1] += format.Ext()
	return filepath.Join(parts...)
}

// splitAndCleanPath splits path into segments dropping empty, current and
// parent directory ones, so result never leaves destination.
func splitAndCleanPath(path string) []string {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == os.PathSeparator || r == '/'
	})
	return slices.DeleteFunc(segments, func(s string) bool {
		return s == "." || s == ".."
	})
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
