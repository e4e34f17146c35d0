// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	RootNotFoundId Id = iota + 1
	ArtifactsNotFoundId
	DescriptorNotFoundId
	DescriptorParseErrorId
	IncompleteCoordinatesId
	ConfigLoadFailedId
	UnknownLayoutId
	InstallFailedId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // optional links into project documentation
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	rootNotFoundIssue = &Issue{
		id: RootNotFoundId,
		mdMsg: `
# Scan root not found!

The directory you asked reposeed to scan does not exist or is not a directory.

## Things you can try:
- Check the path for typos:
~~~
$ reposeed install /path/to/artifacts
~~~

- Verify the directory exists:
~~~
$ ls -d /path/to/artifacts
~~~

- If the artifacts come from a build, make sure the build ran before seeding.`,
	}

	artifactsNotFoundIssue = &Issue{
		id: ArtifactsNotFoundId,
		mdMsg: `
# No artifacts found!

The scan finished without finding any installable files. reposeed looks for
files ending in .jar, .zip, or .pom.

## Things you can try:
- List the directory to confirm what is there:
~~~
$ ls /path/to/artifacts
~~~

- If the artifacts live in subdirectories, enable recursive scanning:
~~~
$ reposeed install -R /path/to/artifacts
~~~

- Check that the files carry the expected extensions; other extensions are ignored.`,
	}

	descriptorNotFoundIssue = &Issue{
		id: DescriptorNotFoundId,
		mdMsg: `
# Descriptor not found!

An artifact was skipped because no POM descriptor could be located for it.

## Where reposeed looks:
1. Inside the archive, under META-INF/maven/**/pom.xml
2. Next to the archive, in a file with the same base name and a .pom extension

## Things you can try:
- Repackage the artifact so the build embeds its pom.xml under META-INF/maven/
- Or place a sibling descriptor beside the file:
~~~
lib/app-1.0.jar
lib/app-1.0.pom
~~~

- Dry-run the batch to see which files resolve:
~~~
$ reposeed plan /path/to/artifacts
~~~`,
	}

	descriptorParseErrorIssue = &Issue{
		id: DescriptorParseErrorId,
		mdMsg: `
# Failed to parse descriptor!

A POM descriptor was found but could not be parsed as XML. A malformed
descriptor aborts the whole batch, because installing an artifact under
wrong coordinates would corrupt the repository.

## Common issues:
- Truncated or corrupted pom.xml inside the archive
- Invalid XML (unclosed tags, bad encoding)
- A .pom sibling file that is not actually a POM

## Things you can try:
- Extract and inspect the embedded descriptor:
~~~
$ unzip -p app-1.0.jar 'META-INF/maven/*/pom.xml'
~~~

- Validate the XML with any XML tool
- Rebuild the artifact if the descriptor was corrupted during packaging`,
	}

	incompleteCoordinatesIssue = &Issue{
		id: IncompleteCoordinatesId,
		mdMsg: `
# Incomplete coordinates!

A descriptor parsed cleanly but does not resolve to full Maven coordinates
(groupId, artifactId, version, packaging).

## How coordinates are resolved:
- groupId and version may be inherited from the <parent> element
- artifactId and packaging must always be declared by the project itself;
  packaging is never defaulted

## Example of a complete minimal POM:
~~~xml
<project>
  <groupId>com.example</groupId>
  <artifactId>app</artifactId>
  <version>1.0</version>
  <packaging>jar</packaging>
</project>
~~~

## Things you can try:
- Add the missing elements to the POM
- If the POM relies on a parent, make sure the <parent> element declares
  groupId and version`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the reposeed configuration file.

## Configuration file locations:
- Linux: ~/.config/reposeed/config.cue
- macOS: ~/Library/Application Support/reposeed/config.cue
- Windows: %APPDATA%\reposeed\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ reposeed config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/reposeed/config.cue
~~~

## Example configuration:
~~~cue
repository: "target/local_repo"
layout: "default"
recursive: false

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	unknownLayoutIssue = &Issue{
		id: UnknownLayoutId,
		mdMsg: `
# Unknown repository layout!

The requested repository layout is not recognized.

## Valid layouts:
- **default**: the standard Maven2 directory layout
- **enhanced**: a legacy alias, treated exactly like "default"

## Things you can try:
- Fix the --layout flag value:
~~~
$ reposeed install --layout default /path/to/artifacts
~~~

- Or fix the layout field in your config file:
~~~cue
layout: "default"
~~~`,
	}

	installFailedIssue = &Issue{
		id: InstallFailedId,
		mdMsg: `
# Failed to install artifact!

Copying an artifact into the repository failed. The batch stops at the first
install failure so the repository is not left half-seeded silently.

## Common causes:
- The repository root is not writable
- The disk is full
- A source file disappeared between scanning and installing

## Things you can try:
- Check permissions on the repository root:
~~~
$ ls -ld target/local_repo
~~~

- Point reposeed at a writable location:
~~~
$ reposeed install --repository /tmp/repo /path/to/artifacts
~~~

- Re-run after fixing the cause; installs are idempotent and already-copied
  files are simply overwritten`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to perform this operation.

## Common causes:
- The repository root lives in a protected directory
- The scan root is readable but its entries are not
- Temp-file extraction is blocked by a restrictive TMPDIR

## Things you can try:
- Check file/directory permissions
- Choose a repository root you own:
~~~
$ reposeed install --repository ~/repo /path/to/artifacts
~~~

- Run reposeed from a directory you own`,
	}

	issues = map[Id]*Issue{
		rootNotFoundIssue.Id():          rootNotFoundIssue,
		artifactsNotFoundIssue.Id():     artifactsNotFoundIssue,
		descriptorNotFoundIssue.Id():    descriptorNotFoundIssue,
		descriptorParseErrorIssue.Id():  descriptorParseErrorIssue,
		incompleteCoordinatesIssue.Id(): incompleteCoordinatesIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		unknownLayoutIssue.Id():         unknownLayoutIssue,
		installFailedIssue.Id():         installFailedIssue,
		permissionDeniedIssue.Id():      permissionDeniedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
