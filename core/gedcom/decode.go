package gedcom

import (
	"log/slog"

	"github.com/FocuswithJustin/gedcomkit/core/model"
	"github.com/FocuswithJustin/gedcomkit/core/validate"
)

// decoder maps a node tree onto the record graph. Tags it does not know
// are skipped with their subtree and counted.
type decoder struct {
	logger  *slog.Logger
	records int
	skipped int
}

func (d *decoder) skip(n *node) {
	d.skipped++
	d.logger.Debug("skipped unknown tag", "tag", n.tag, "level", n.level, "line", n.line)
}

func (d *decoder) document(roots []*node) *model.Gedcom {
	g := model.NewGedcom()
	g.Header = nil
	g.Trailer = nil

	for _, n := range roots {
		switch n.tag {
		case "HEAD":
			g.Header = d.header(n)
		case "SUBN":
			g.Submission = d.submission(n)
		case "SUBM":
			g.Submitters.Put(n.xref, d.submitter(n))
		case "INDI":
			g.Individuals.Put(n.xref, d.individual(n))
		case "FAM":
			g.Families.Put(n.xref, d.family(n))
		case "OBJE":
			g.Multimedia.Put(n.xref, d.multimedia(n))
		case "NOTE":
			g.Notes.Put(n.xref, d.noteRecord(n))
		case "REPO":
			g.Repositories.Put(n.xref, d.repository(n))
		case "SOUR":
			g.Sources.Put(n.xref, d.source(n))
		case "TRLR":
			g.Trailer = &model.Trailer{}
			continue
		default:
			d.skip(n)
			continue
		}
		d.records++
	}
	return g
}

func (d *decoder) header(n *node) *model.Header {
	h := &model.Header{}
	for _, c := range n.children {
		switch c.tag {
		case "SOUR":
			h.SourceSystem = d.sourceSystem(c)
		case "DEST":
			h.DestinationSystem = c.value()
		case "DATE":
			h.Date = c.value()
			for _, t := range c.children {
				if t.tag == "TIME" {
					h.Time = t.value()
				} else {
					d.skip(t)
				}
			}
		case "SUBM":
			h.SubmitterXRef = c.value()
		case "SUBN":
			h.SubmissionXRef = c.value()
		case "FILE":
			h.FileName = c.value()
		case "COPR":
			h.CopyrightData = c.value()
		case "GEDC":
			gv := &model.GedcomVersion{}
			for _, v := range c.children {
				switch v.tag {
				case "VERS":
					gv.VersionNumber = v.value()
				case "FORM":
					gv.GedcomForm = v.value()
				default:
					d.skip(v)
				}
			}
			h.GedcomVersion = gv
		case "CHAR":
			cs := &model.CharacterSet{CharacterSetName: c.value()}
			for _, v := range c.children {
				if v.tag == "VERS" {
					cs.VersionNum = v.value()
				} else {
					d.skip(v)
				}
			}
			h.CharacterSet = cs
		case "LANG":
			h.Language = c.value()
		case "PLAC":
			for _, f := range c.children {
				if f.tag == "FORM" {
					h.PlaceStructure = f.value()
				} else {
					d.skip(f)
				}
			}
		case "NOTE":
			h.Notes = append(h.Notes, c.text()...)
		default:
			d.skip(c)
		}
	}
	return h
}

func (d *decoder) sourceSystem(n *node) *model.SourceSystem {
	ss := &model.SourceSystem{SystemID: n.value()}
	for _, c := range n.children {
		switch c.tag {
		case "VERS":
			ss.VersionNum = c.value()
		case "NAME":
			ss.ProductName = c.value()
		case "CORP":
			corp := &model.Corporation{BusinessName: c.value()}
			for _, cc := range c.children {
				switch cc.tag {
				case "ADDR":
					corp.Address = d.address(cc)
				case "PHON":
					corp.PhoneNumbers = append(corp.PhoneNumbers, cc.value())
				default:
					d.skip(cc)
				}
			}
			ss.Corporation = corp
		case "DATA":
			sd := &model.HeaderSourceData{Name: c.value()}
			for _, cc := range c.children {
				switch cc.tag {
				case "DATE":
					sd.PublishDate = cc.value()
				case "COPR":
					sd.Copyright = cc.value()
				default:
					d.skip(cc)
				}
			}
			ss.SourceData = sd
		default:
			d.skip(c)
		}
	}
	return ss
}

func (d *decoder) submission(n *node) *model.Submission {
	s := &model.Submission{XRef: n.xref}
	for _, c := range n.children {
		switch c.tag {
		case "SUBM":
			s.SubmitterXRef = c.value()
		case "FAMF":
			s.NameOfFamilyFile = c.value()
		case "TEMP":
			s.TempleCode = c.value()
		case "ANCE":
			s.AncestorsCount = c.value()
		case "DESC":
			s.DescendantsCount = c.value()
		case "ORDI":
			s.OrdinanceProcessFlag = c.value()
		case "RIN":
			s.RecIDNumber = c.value()
		default:
			d.skip(c)
		}
	}
	return s
}

func (d *decoder) submitter(n *node) *model.Submitter {
	s := &model.Submitter{XRef: n.xref}
	for _, c := range n.children {
		switch c.tag {
		case "NAME":
			s.Name = c.value()
		case "ADDR":
			s.Address = d.address(c)
		case "OBJE":
			s.Multimedia = append(s.Multimedia, d.multimediaLink(c))
		case "LANG":
			s.LanguagePref = append(s.LanguagePref, c.value())
		case "PHON":
			s.PhoneNumbers = append(s.PhoneNumbers, c.value())
		case "RFN":
			s.RegFileNumber = c.value()
		case "RIN":
			s.RecIDNumber = c.value()
		case "CHAN":
			s.ChangeDate = d.changeDate(c)
		default:
			d.skip(c)
		}
	}
	return s
}

func (d *decoder) repository(n *node) *model.Repository {
	r := &model.Repository{XRef: n.xref}
	for _, c := range n.children {
		switch c.tag {
		case "NAME":
			r.Name = c.value()
		case "ADDR":
			r.Address = d.address(c)
		case "NOTE":
			r.Notes = append(r.Notes, d.note(c))
		case "REFN":
			r.UserReferences = append(r.UserReferences, d.userReference(c))
		case "RIN":
			r.RecIDNumber = c.value()
		case "RFN":
			r.RegFileNumber = c.value()
		case "PHON":
			r.PhoneNumbers = append(r.PhoneNumbers, c.value())
		case "CHAN":
			r.ChangeDate = d.changeDate(c)
		default:
			d.skip(c)
		}
	}
	return r
}

func (d *decoder) source(n *node) *model.Source {
	s := &model.Source{XRef: n.xref}
	for _, c := range n.children {
		switch c.tag {
		case "DATA":
			s.Data = d.sourceData(c)
		case "AUTH":
			s.OriginatorsAuthors = c.text()
		case "TITL":
			s.Title = c.text()
		case "ABBR":
			s.SourceFiledBy = c.value()
		case "PUBL":
			s.PublicationFacts = c.text()
		case "TEXT":
			s.SourceText = c.text()
		case "REPO":
			s.RepositoryCitation = d.repositoryCitation(c)
		case "OBJE":
			s.Multimedia = append(s.Multimedia, d.multimediaLink(c))
		case "NOTE":
			s.Notes = append(s.Notes, d.note(c))
		case "REFN":
			s.UserReferences = append(s.UserReferences, d.userReference(c))
		case "RIN":
			s.RecIDNumber = c.value()
		case "RFN":
			s.RegFileNumber = c.value()
		case "CHAN":
			s.ChangeDate = d.changeDate(c)
		default:
			d.skip(c)
		}
	}
	return s
}

func (d *decoder) sourceData(n *node) *model.SourceData {
	sd := &model.SourceData{}
	for _, c := range n.children {
		switch c.tag {
		case "EVEN":
			ev := &model.EventRecorded{EventType: c.value()}
			for _, cc := range c.children {
				switch cc.tag {
				case "DATE":
					ev.DatePeriod = cc.value()
				case "PLAC":
					ev.Jurisdiction = cc.value()
				default:
					d.skip(cc)
				}
			}
			sd.EventsRecorded = append(sd.EventsRecorded, ev)
		case "AGNC":
			sd.RespAgency = c.value()
		case "NOTE":
			sd.Notes = append(sd.Notes, d.note(c))
		default:
			d.skip(c)
		}
	}
	return sd
}

func (d *decoder) repositoryCitation(n *node) *model.RepositoryCitation {
	rc := &model.RepositoryCitation{RepositoryXRef: n.value()}
	for _, c := range n.children {
		switch c.tag {
		case "NOTE":
			rc.Notes = append(rc.Notes, d.note(c))
		case "CALN":
			cn := &model.SourceCallNumber{CallNumber: c.value()}
			for _, m := range c.children {
				if m.tag == "MEDI" {
					cn.MediaType = m.value()
				} else {
					d.skip(m)
				}
			}
			rc.CallNumbers = append(rc.CallNumbers, cn)
		default:
			d.skip(c)
		}
	}
	return rc
}

func (d *decoder) multimedia(n *node) *model.Multimedia {
	m := &model.Multimedia{XRef: n.xref}
	for _, c := range n.children {
		switch c.tag {
		case "FORM":
			m.Format = c.value()
		case "TITL":
			m.Title = c.value()
		case "NOTE":
			m.Notes = append(m.Notes, d.note(c))
		case "BLOB":
			blob := c.lines
			if len(blob) > 0 && blob[0] == "" {
				blob = blob[1:]
			}
			if len(blob) > 0 {
				m.Blob = blob
			}
		case "OBJE":
			m.ContinuedObjectXRef = c.value()
		case "REFN":
			m.UserReferences = append(m.UserReferences, d.userReference(c))
		case "RIN":
			m.RecIDNumber = c.value()
		case "CHAN":
			m.ChangeDate = d.changeDate(c)
		default:
			d.skip(c)
		}
	}
	return m
}

func (d *decoder) noteRecord(n *node) *model.NoteRecord {
	nr := &model.NoteRecord{XRef: n.xref, Lines: n.text()}
	for _, c := range n.children {
		switch c.tag {
		case "SOUR":
			nr.Citations = append(nr.Citations, d.citation(c))
		case "REFN":
			nr.UserReferences = append(nr.UserReferences, d.userReference(c))
		case "RIN":
			nr.RecIDNumber = c.value()
		case "CHAN":
			nr.ChangeDate = d.changeDate(c)
		default:
			d.skip(c)
		}
	}
	return nr
}

func (d *decoder) address(n *node) *model.Address {
	a := &model.Address{Lines: n.text()}
	for _, c := range n.children {
		switch c.tag {
		case "ADR1":
			a.Addr1 = c.value()
		case "ADR2":
			a.Addr2 = c.value()
		case "CITY":
			a.City = c.value()
		case "STAE":
			a.StateProvince = c.value()
		case "POST":
			a.PostalCode = c.value()
		case "CTRY":
			a.Country = c.value()
		default:
			d.skip(c)
		}
	}
	return a
}

func (d *decoder) changeDate(n *node) *model.ChangeDate {
	cd := &model.ChangeDate{}
	for _, c := range n.children {
		switch c.tag {
		case "DATE":
			cd.Date = c.value()
			for _, t := range c.children {
				if t.tag == "TIME" {
					cd.Time = t.value()
				} else {
					d.skip(t)
				}
			}
		case "NOTE":
			cd.Notes = append(cd.Notes, d.note(c))
		default:
			d.skip(c)
		}
	}
	return cd
}

func (d *decoder) userReference(n *node) *model.UserReference {
	u := &model.UserReference{ReferenceNum: n.value()}
	for _, c := range n.children {
		if c.tag == "TYPE" {
			u.Type = c.value()
		} else {
			d.skip(c)
		}
	}
	return u
}

func (d *decoder) note(n *node) *model.NoteStructure {
	ns := &model.NoteStructure{}
	if v := n.value(); len(n.lines) == 1 && validate.IsValidXRef(v) {
		ns.XRef = v
	} else {
		ns.Lines = n.text()
	}
	for _, c := range n.children {
		if c.tag == "SOUR" {
			ns.Citations = append(ns.Citations, d.citation(c))
		} else {
			d.skip(c)
		}
	}
	return ns
}

func (d *decoder) citation(n *node) *model.Citation {
	c := &model.Citation{}
	if v := n.value(); len(n.lines) == 1 && validate.IsValidXRef(v) {
		c.SourceXRef = v
	} else {
		c.Description = n.text()
	}
	for _, ch := range n.children {
		switch ch.tag {
		case "PAGE":
			c.Page = ch.value()
		case "EVEN":
			c.EventCited = ch.value()
			for _, r := range ch.children {
				if r.tag == "ROLE" {
					c.RoleInEvent = r.value()
				} else {
					d.skip(r)
				}
			}
		case "DATA":
			data := &model.CitationData{}
			for _, dc := range ch.children {
				switch dc.tag {
				case "DATE":
					data.EntryDate = dc.value()
				case "TEXT":
					data.Text = append(data.Text, dc.text())
				default:
					d.skip(dc)
				}
			}
			c.Data = data
		case "TEXT":
			c.TextFromSource = append(c.TextFromSource, ch.text())
		case "OBJE":
			c.Multimedia = append(c.Multimedia, d.multimediaLink(ch))
		case "NOTE":
			c.Notes = append(c.Notes, d.note(ch))
		case "QUAY":
			c.Certainty = ch.value()
		default:
			d.skip(ch)
		}
	}
	return c
}

func (d *decoder) multimediaLink(n *node) *model.MultimediaLink {
	m := &model.MultimediaLink{}
	if v := n.value(); validate.IsValidXRef(v) {
		m.XRef = v
		return m
	}
	for _, c := range n.children {
		switch c.tag {
		case "FORM":
			m.Format = c.value()
		case "TITL":
			m.Title = c.value()
		case "FILE":
			m.FileReference = c.value()
		case "NOTE":
			m.Notes = append(m.Notes, d.note(c))
		default:
			d.skip(c)
		}
	}
	return m
}
