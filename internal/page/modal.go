package page

import "folio/internal/portfolio"

// SelectAndOpen selects project and opens the modal in one transition.
// A nil project is ignored.
func (p *Page) SelectAndOpen(project *portfolio.Project) {
	if project == nil {
		return
	}
	next := p.snap
	next.Selection = Selection{Selected: project, Open: true}
	p.commit(next)
}

// Close hides the modal. The selection is kept.
func (p *Page) Close() {
	if !p.snap.Selection.Open {
		return
	}
	next := p.snap
	next.Selection.Open = false
	p.commit(next)
}
