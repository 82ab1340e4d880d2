package gedcom

import (
	"github.com/FocuswithJustin/gedcomkit/core/model"
)

func (d *decoder) family(n *node) *model.Family {
	f := &model.Family{XRef: n.xref}
	for _, c := range n.children {
		switch {
		case familyEventTags[c.tag]:
			f.Events = append(f.Events, d.event(c))
		case c.tag == "HUSB":
			f.HusbandXRef = c.value()
		case c.tag == "WIFE":
			f.WifeXRef = c.value()
		case c.tag == "CHIL":
			f.ChildXRefs = append(f.ChildXRefs, c.value())
		case c.tag == "NCHI":
			f.NumChildren = c.value()
		case c.tag == "SUBM":
			f.SubmitterXRefs = append(f.SubmitterXRefs, c.value())
		case c.tag == "SOUR":
			f.Citations = append(f.Citations, d.citation(c))
		case c.tag == "OBJE":
			f.Multimedia = append(f.Multimedia, d.multimediaLink(c))
		case c.tag == "NOTE":
			f.Notes = append(f.Notes, d.note(c))
		case c.tag == "REFN":
			f.UserReferences = append(f.UserReferences, d.userReference(c))
		case c.tag == "RIN":
			f.RecIDNumber = c.value()
		case c.tag == "CHAN":
			f.ChangeDate = d.changeDate(c)
		default:
			d.skip(c)
		}
	}
	return f
}

func (d *decoder) individual(n *node) *model.Individual {
	ind := &model.Individual{XRef: n.xref}
	for _, c := range n.children {
		switch {
		case individualEventTags[c.tag]:
			ind.Events = append(ind.Events, d.event(c))
		case individualAttributeTags[c.tag]:
			ind.Attributes = append(ind.Attributes, d.event(c))
		case c.tag == "RESN":
			ind.Restriction = c.value()
		case c.tag == "NAME":
			ind.Names = append(ind.Names, d.personalName(c))
		case c.tag == "SEX":
			ind.Sex = c.value()
		case c.tag == "FAMC":
			l := &model.ChildToFamilyLink{FamilyXRef: c.value()}
			for _, cc := range c.children {
				switch cc.tag {
				case "PEDI":
					l.Pedigree = cc.value()
				case "NOTE":
					l.Notes = append(l.Notes, d.note(cc))
				default:
					d.skip(cc)
				}
			}
			ind.ChildToFamily = append(ind.ChildToFamily, l)
		case c.tag == "FAMS":
			l := &model.SpouseToFamilyLink{FamilyXRef: c.value()}
			for _, cc := range c.children {
				if cc.tag == "NOTE" {
					l.Notes = append(l.Notes, d.note(cc))
				} else {
					d.skip(cc)
				}
			}
			ind.SpouseToFamily = append(ind.SpouseToFamily, l)
		case c.tag == "SUBM":
			ind.SubmitterXRefs = append(ind.SubmitterXRefs, c.value())
		case c.tag == "ASSO":
			ind.Associations = append(ind.Associations, d.association(c))
		case c.tag == "ALIA":
			ind.Aliases = append(ind.Aliases, c.value())
		case c.tag == "ANCI":
			ind.AncestorInterest = append(ind.AncestorInterest, c.value())
		case c.tag == "DESI":
			ind.DescendantInterest = append(ind.DescendantInterest, c.value())
		case c.tag == "SOUR":
			ind.Citations = append(ind.Citations, d.citation(c))
		case c.tag == "OBJE":
			ind.Multimedia = append(ind.Multimedia, d.multimediaLink(c))
		case c.tag == "NOTE":
			ind.Notes = append(ind.Notes, d.note(c))
		case c.tag == "RFN":
			ind.PermanentRecFileNumber = c.value()
		case c.tag == "AFN":
			ind.AncestralFileNumber = c.value()
		case c.tag == "REFN":
			ind.UserReferences = append(ind.UserReferences, d.userReference(c))
		case c.tag == "RIN":
			ind.RecIDNumber = c.value()
		case c.tag == "CHAN":
			ind.ChangeDate = d.changeDate(c)
		default:
			d.skip(c)
		}
	}
	return ind
}

func (d *decoder) personalName(n *node) *model.PersonalName {
	pn := &model.PersonalName{Basic: n.value()}
	for _, c := range n.children {
		switch c.tag {
		case "NPFX":
			pn.Prefix = c.value()
		case "GIVN":
			pn.Given = c.value()
		case "NICK":
			pn.Nickname = c.value()
		case "SPFX":
			pn.SurnamePrefix = c.value()
		case "SURN":
			pn.Surname = c.value()
		case "NSFX":
			pn.Suffix = c.value()
		case "SOUR":
			pn.Citations = append(pn.Citations, d.citation(c))
		case "NOTE":
			pn.Notes = append(pn.Notes, d.note(c))
		default:
			d.skip(c)
		}
	}
	return pn
}

func (d *decoder) association(n *node) *model.Association {
	a := &model.Association{XRef: n.value()}
	for _, c := range n.children {
		switch c.tag {
		case "TYPE":
			a.Type = c.value()
		case "RELA":
			a.Relationship = c.value()
		case "SOUR":
			a.Citations = append(a.Citations, d.citation(c))
		case "NOTE":
			a.Notes = append(a.Notes, d.note(c))
		default:
			d.skip(c)
		}
	}
	return a
}

// event decodes an event or attribute. HUSB and WIFE children carry the
// spouses' ages of a family event.
func (d *decoder) event(n *node) *model.Event {
	ev := &model.Event{Tag: n.tag, Value: n.value()}
	for _, c := range n.children {
		switch c.tag {
		case "HUSB", "WIFE":
			age := ""
			for _, a := range c.children {
				if a.tag == "AGE" {
					age = a.value()
				} else {
					d.skip(a)
				}
			}
			if c.tag == "HUSB" {
				ev.HusbandAge = age
			} else {
				ev.WifeAge = age
			}
		case "TYPE":
			ev.Type = c.value()
		case "DATE":
			ev.Date = c.value()
		case "PLAC":
			ev.Place = d.place(c)
		case "ADDR":
			ev.Address = d.address(c)
		case "AGE":
			ev.Age = c.value()
		case "AGNC":
			ev.RespAgency = c.value()
		case "CAUS":
			ev.Cause = c.value()
		case "SOUR":
			ev.Citations = append(ev.Citations, d.citation(c))
		case "OBJE":
			ev.Multimedia = append(ev.Multimedia, d.multimediaLink(c))
		case "NOTE":
			ev.Notes = append(ev.Notes, d.note(c))
		case "FAMC":
			ev.FamilyXRef = c.value()
			for _, a := range c.children {
				if a.tag == "ADOP" {
					ev.AdoptedBy = a.value()
				} else {
					d.skip(a)
				}
			}
		default:
			d.skip(c)
		}
	}
	return ev
}

func (d *decoder) place(n *node) *model.Place {
	p := &model.Place{Name: n.value()}
	for _, c := range n.children {
		switch c.tag {
		case "FORM":
			p.Form = c.value()
		case "SOUR":
			p.Citations = append(p.Citations, d.citation(c))
		case "NOTE":
			p.Notes = append(p.Notes, d.note(c))
		default:
			d.skip(c)
		}
	}
	return p
}
