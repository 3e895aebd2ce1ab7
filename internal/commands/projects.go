package commands

import (
	"strings"

	"github.com/sirilv/termfolio/internal/console"
	"github.com/sirilv/termfolio/internal/content"
)

// ls lists project directories the way a long listing would.
func (b *builtins) ls() []console.Line {
	var out []console.Line
	for _, p := range b.profile.Projects {
		if p.Dir == "" {
			continue
		}
		entry := console.S(console.Info, p.Dir)
		if link := p.ListingLink(); link != "" {
			entry = console.Href(p.Dir, link)
		}
		out = append(out, console.Join(console.S(console.Dim, "drwxr-xr-x  "), entry))
	}
	return append(out,
		console.Blank(),
		console.Text(console.Dim, "Use 'projects' for detailed view"),
	)
}

// projects prints every project, or only those whose name starts with the
// joined arguments.
func (b *builtins) projects(_ *console.Context, args []string) []console.Action {
	query := strings.Join(args, " ")
	var matched []content.Project
	for _, p := range b.profile.Projects {
		if query == "" || hasFoldPrefix(p.Name, query) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return console.PrintLines(
			console.Text(console.Error, "projects: no such project: "+console.Sanitize(query)),
		)
	}

	var body []console.Line
	for _, p := range matched {
		name := console.S(console.CommandName, p.Name)
		if p.Link != "" {
			name = console.Href(p.Name, p.Link)
		}
		body = append(body,
			console.Text(console.Dim, "["+p.Type+"]"),
			console.Join(name),
			console.Text(console.Plain, p.Desc),
			console.Blank(),
		)
	}
	return console.PrintLines(boxed("My Projects", body...)...)
}

func hasFoldPrefix(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
