package fixers

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/junitmig/internal/model"
)

// Library describes a release artifact downloaded by the CI workflow.
type Library struct {
	Name      string // display name used in echo lines, e.g. HDF5
	Repo      string // GitHub repository, e.g. HDFGroup/hdf5
	TagInput  string // workflow input holding the release tag
	NameInput string // workflow input holding the optional artifact base name
	Prefix    string // artifact file prefix before the version
	Dir       string // directory the archive extracts to
}

// DefaultLibraries are the HDF releases the workflow downloads.
var DefaultLibraries = []Library{
	{Name: "HDF4", Repo: "HDFGroup/hdf4", TagInput: "use_hdf", NameInput: "use_hdf_name", Prefix: "", Dir: "hdf4"},
	{Name: "HDF5", Repo: "HDFGroup/hdf5", TagInput: "use_hdf5", NameInput: "use_hdf5_name", Prefix: "hdf5-", Dir: "hdf5"},
}

// DefaultPlatforms are the archive platform suffixes of bash-based runners.
var DefaultPlatforms = []string{"ubuntu-2404_gcc", "macos14_clang"}

// LineRule is a custom regular-expression substitution applied per line.
type LineRule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// Downloads rewrites hard-coded release download steps into steps that honour
// the optional artifact name inputs, then applies custom line rules.
type Downloads struct {
	libraries []Library
	platforms []string
	rules     []LineRule
	echoes    []*regexp.Regexp
}

// NewDownloads creates a workflow patcher for the default libraries and
// platforms plus the given custom rules.
func NewDownloads(rules []LineRule) *Downloads {
	d := &Downloads{libraries: DefaultLibraries, platforms: DefaultPlatforms, rules: rules}

	for _, lib := range d.libraries {
		d.echoes = append(d.echoes, regexp.MustCompile(
			`^([ \t]*)echo "Downloading `+regexp.QuoteMeta(lib.Name)+`: `+
				regexp.QuoteMeta(input(lib.TagInput))+`"[ \t]*$`,
		))
	}

	return d
}

// Kind implements the domain fixer contract.
func (d *Downloads) Kind() m.FixKind {
	return m.FixDownloads
}

// Fix implements the domain fixer contract.
func (d *Downloads) Fix(source m.Source) (m.Patch, error) {
	lines := source.Lines
	covered := make([]bool, len(lines))

	var patch m.Patch

	for i := 0; i < len(lines); i++ {
		for li, echo := range d.echoes {
			match := echo.FindStringSubmatch(lines[i])
			if match == nil {
				continue
			}

			lib, indent := d.libraries[li], match[1]

			change, ok := d.matchBlock(lines, i, lib, indent)
			if !ok {
				patch.Skips = append(patch.Skips, m.Skip{
					Line:   i + 1,
					Reason: fmt.Sprintf("%s download block not recognized", lib.Name),
				})

				break
			}

			patch.Changes = append(patch.Changes, change)

			for k := change.Start; k <= change.End(); k++ {
				covered[k] = true
			}

			i = change.End()

			break
		}
	}

	for i, line := range lines {
		if covered[i] {
			continue
		}

		replaced, names := d.applyRules(line)
		if replaced == line {
			continue
		}

		patch.Changes = append(patch.Changes, m.Change{
			Kind:   m.FixDownloads,
			Start:  i,
			Before: []string{line},
			After:  []string{replaced},
			Note:   strings.Join(names, ","),
		})
	}

	return patch, nil
}

func (d *Downloads) matchBlock(lines []string, start int, lib Library, indent string) (m.Change, bool) {
	for _, platform := range d.platforms {
		old := oldDownloadBlock(lib, platform, indent)
		if start+len(old) > len(lines) || !blockEqual(lines[start:start+len(old)], old) {
			continue
		}

		return m.Change{
			Kind:   m.FixDownloads,
			Start:  start,
			Before: append([]string(nil), lines[start:start+len(old)]...),
			After:  newDownloadBlock(lib, platform, indent),
			Note:   lib.Name + " " + platform,
		}, true
	}

	return m.Change{}, false
}

func (d *Downloads) applyRules(line string) (string, []string) {
	var names []string

	for _, rule := range d.rules {
		replaced := rule.Pattern.ReplaceAllString(line, rule.Replace)
		if replaced != line {
			names = append(names, rule.Name)
			line = replaced
		}
	}

	return line, names
}

func input(name string) string {
	return "${{ inputs." + name + " }}"
}

func archive(lib Library, platform string) string {
	return lib.Prefix + input(lib.TagInput) + "-" + platform + ".tar.gz"
}

func archiveGlob(lib Library, platform string) string {
	return lib.Prefix + "*-" + platform + ".tar.gz"
}

func oldDownloadBlock(lib Library, platform, indent string) []string {
	return indentBlock(indent, []string{
		`echo "Downloading ` + lib.Name + `: ` + input(lib.TagInput) + `"`,
		``,
		`# Download ` + lib.Name + ` binary from HDF Group GitHub releases`,
		`gh release download "` + input(lib.TagInput) + `" \`,
		`  --repo ` + lib.Repo + ` \`,
		`  --pattern "` + archive(lib, platform) + `"`,
		``,
		`# Extract outer tar.gz (creates ` + lib.Dir + `/ directory)`,
		`tar -zxvf "` + archive(lib, platform) + `"`,
	})
}

func newDownloadBlock(lib Library, platform, indent string) []string {
	return indentBlock(indent, []string{
		`echo "Downloading ` + lib.Name + ` from release tag: ` + input(lib.TagInput) + `"`,
		``,
		`# Determine file pattern based on whether base name is provided`,
		`if [ -n "` + input(lib.NameInput) + `" ]; then`,
		`  PATTERN="` + input(lib.NameInput) + `-` + platform + `.tar.gz"`,
		`else`,
		`  PATTERN="` + archiveGlob(lib, platform) + `"`,
		`fi`,
		`echo "Using pattern: $PATTERN"`,
		``,
		`# Download ` + lib.Name + ` binary from HDF Group GitHub releases`,
		`gh release download "` + input(lib.TagInput) + `" \`,
		`  --repo ` + lib.Repo + ` \`,
		`  --pattern "$PATTERN" \`,
		`  --clobber`,
		``,
		`# Extract outer tar.gz (creates ` + lib.Dir + `/ directory)`,
		`tar -zxvf ` + archiveGlob(lib, platform),
		`[ -d ` + lib.Dir + ` ] || mv ` + lib.Dir + `-* ` + lib.Dir,
	})
}

func indentBlock(indent string, lines []string) []string {
	out := make([]string, len(lines))

	for i, line := range lines {
		if line != "" {
			out[i] = indent + line
		}
	}

	return out
}

// blockEqual compares lines ignoring trailing blanks; blank lines match any
// whitespace-only line.
func blockEqual(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}

	for i := range want {
		if strings.TrimRight(got[i], " \t") != want[i] {
			return false
		}
	}

	return true
}
