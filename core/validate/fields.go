package validate

import (
	"sort"

	"github.com/FocuswithJustin/gedcomkit/core/model"
)

type accessor func(model.Element) any

// field adapts a typed getter to an accessor.
func field[T model.Element](get func(T) any) accessor {
	return func(e model.Element) any { return get(e.(T)) }
}

// fieldAccessors maps a kind and field name to a getter. Finding field
// names are keys of this table.
var fieldAccessors = map[model.Kind]map[string]accessor{
	model.KindGedcom: {
		"header":       field(func(g *model.Gedcom) any { return g.Header }),
		"submission":   field(func(g *model.Gedcom) any { return g.Submission }),
		"submitters":   field(func(g *model.Gedcom) any { return g.Submitters }),
		"individuals":  field(func(g *model.Gedcom) any { return g.Individuals }),
		"families":     field(func(g *model.Gedcom) any { return g.Families }),
		"multimedia":   field(func(g *model.Gedcom) any { return g.Multimedia }),
		"notes":        field(func(g *model.Gedcom) any { return g.Notes }),
		"repositories": field(func(g *model.Gedcom) any { return g.Repositories }),
		"sources":      field(func(g *model.Gedcom) any { return g.Sources }),
		"trailer":      field(func(g *model.Gedcom) any { return g.Trailer }),
	},
	model.KindHeader: {
		"sourceSystem":      field(func(h *model.Header) any { return h.SourceSystem }),
		"destinationSystem": field(func(h *model.Header) any { return h.DestinationSystem }),
		"date":              field(func(h *model.Header) any { return h.Date }),
		"time":              field(func(h *model.Header) any { return h.Time }),
		"submitterXRef":     field(func(h *model.Header) any { return h.SubmitterXRef }),
		"submissionXRef":    field(func(h *model.Header) any { return h.SubmissionXRef }),
		"fileName":          field(func(h *model.Header) any { return h.FileName }),
		"copyrightData":     field(func(h *model.Header) any { return h.CopyrightData }),
		"gedcomVersion":     field(func(h *model.Header) any { return h.GedcomVersion }),
		"characterSet":      field(func(h *model.Header) any { return h.CharacterSet }),
		"language":          field(func(h *model.Header) any { return h.Language }),
		"placeStructure":    field(func(h *model.Header) any { return h.PlaceStructure }),
		"notes":             field(func(h *model.Header) any { return h.Notes }),
	},
	model.KindSourceSystem: {
		"systemId":    field(func(s *model.SourceSystem) any { return s.SystemID }),
		"versionNum":  field(func(s *model.SourceSystem) any { return s.VersionNum }),
		"productName": field(func(s *model.SourceSystem) any { return s.ProductName }),
		"corporation": field(func(s *model.SourceSystem) any { return s.Corporation }),
		"sourceData":  field(func(s *model.SourceSystem) any { return s.SourceData }),
	},
	model.KindCorporation: {
		"businessName": field(func(c *model.Corporation) any { return c.BusinessName }),
		"address":      field(func(c *model.Corporation) any { return c.Address }),
		"phoneNumbers": field(func(c *model.Corporation) any { return c.PhoneNumbers }),
	},
	model.KindGedcomVersion: {
		"versionNumber": field(func(g *model.GedcomVersion) any { return g.VersionNumber }),
		"gedcomForm":    field(func(g *model.GedcomVersion) any { return g.GedcomForm }),
	},
	model.KindCharacterSet: {
		"characterSetName": field(func(c *model.CharacterSet) any { return c.CharacterSetName }),
		"versionNum":       field(func(c *model.CharacterSet) any { return c.VersionNum }),
	},
	model.KindSubmission: {
		"xref":                 field(func(s *model.Submission) any { return s.XRef }),
		"submitterXRef":        field(func(s *model.Submission) any { return s.SubmitterXRef }),
		"nameOfFamilyFile":     field(func(s *model.Submission) any { return s.NameOfFamilyFile }),
		"templeCode":           field(func(s *model.Submission) any { return s.TempleCode }),
		"ancestorsCount":       field(func(s *model.Submission) any { return s.AncestorsCount }),
		"descendantsCount":     field(func(s *model.Submission) any { return s.DescendantsCount }),
		"ordinanceProcessFlag": field(func(s *model.Submission) any { return s.OrdinanceProcessFlag }),
		"recIdNumber":          field(func(s *model.Submission) any { return s.RecIDNumber }),
	},
	model.KindSubmitter: {
		"xref":          field(func(s *model.Submitter) any { return s.XRef }),
		"name":          field(func(s *model.Submitter) any { return s.Name }),
		"address":       field(func(s *model.Submitter) any { return s.Address }),
		"multimedia":    field(func(s *model.Submitter) any { return s.Multimedia }),
		"languagePref":  field(func(s *model.Submitter) any { return s.LanguagePref }),
		"phoneNumbers":  field(func(s *model.Submitter) any { return s.PhoneNumbers }),
		"regFileNumber": field(func(s *model.Submitter) any { return s.RegFileNumber }),
		"recIdNumber":   field(func(s *model.Submitter) any { return s.RecIDNumber }),
		"changeDate":    field(func(s *model.Submitter) any { return s.ChangeDate }),
	},
	model.KindRepository: {
		"xref":           field(func(r *model.Repository) any { return r.XRef }),
		"name":           field(func(r *model.Repository) any { return r.Name }),
		"address":        field(func(r *model.Repository) any { return r.Address }),
		"notes":          field(func(r *model.Repository) any { return r.Notes }),
		"userReferences": field(func(r *model.Repository) any { return r.UserReferences }),
		"recIdNumber":    field(func(r *model.Repository) any { return r.RecIDNumber }),
		"regFileNumber":  field(func(r *model.Repository) any { return r.RegFileNumber }),
		"phoneNumbers":   field(func(r *model.Repository) any { return r.PhoneNumbers }),
		"changeDate":     field(func(r *model.Repository) any { return r.ChangeDate }),
	},
	model.KindRepositoryCitation: {
		"repositoryXRef": field(func(r *model.RepositoryCitation) any { return r.RepositoryXRef }),
		"notes":          field(func(r *model.RepositoryCitation) any { return r.Notes }),
		"callNumbers":    field(func(r *model.RepositoryCitation) any { return r.CallNumbers }),
	},
	model.KindSource: {
		"xref":               field(func(s *model.Source) any { return s.XRef }),
		"data":               field(func(s *model.Source) any { return s.Data }),
		"originatorsAuthors": field(func(s *model.Source) any { return s.OriginatorsAuthors }),
		"title":              field(func(s *model.Source) any { return s.Title }),
		"sourceFiledBy":      field(func(s *model.Source) any { return s.SourceFiledBy }),
		"publicationFacts":   field(func(s *model.Source) any { return s.PublicationFacts }),
		"sourceText":         field(func(s *model.Source) any { return s.SourceText }),
		"repositoryCitation": field(func(s *model.Source) any { return s.RepositoryCitation }),
		"multimedia":         field(func(s *model.Source) any { return s.Multimedia }),
		"notes":              field(func(s *model.Source) any { return s.Notes }),
		"userReferences":     field(func(s *model.Source) any { return s.UserReferences }),
		"recIdNumber":        field(func(s *model.Source) any { return s.RecIDNumber }),
		"regFileNumber":      field(func(s *model.Source) any { return s.RegFileNumber }),
		"changeDate":         field(func(s *model.Source) any { return s.ChangeDate }),
	},
	model.KindMultimedia: {
		"xref":                field(func(m *model.Multimedia) any { return m.XRef }),
		"format":              field(func(m *model.Multimedia) any { return m.Format }),
		"title":               field(func(m *model.Multimedia) any { return m.Title }),
		"notes":               field(func(m *model.Multimedia) any { return m.Notes }),
		"blob":                field(func(m *model.Multimedia) any { return m.Blob }),
		"continuedObjectXRef": field(func(m *model.Multimedia) any { return m.ContinuedObjectXRef }),
		"userReferences":      field(func(m *model.Multimedia) any { return m.UserReferences }),
		"recIdNumber":         field(func(m *model.Multimedia) any { return m.RecIDNumber }),
		"changeDate":          field(func(m *model.Multimedia) any { return m.ChangeDate }),
	},
	model.KindMultimediaLink: {
		"xref":          field(func(m *model.MultimediaLink) any { return m.XRef }),
		"format":        field(func(m *model.MultimediaLink) any { return m.Format }),
		"title":         field(func(m *model.MultimediaLink) any { return m.Title }),
		"fileReference": field(func(m *model.MultimediaLink) any { return m.FileReference }),
		"notes":         field(func(m *model.MultimediaLink) any { return m.Notes }),
	},
	model.KindNoteRecord: {
		"xref":           field(func(n *model.NoteRecord) any { return n.XRef }),
		"lines":          field(func(n *model.NoteRecord) any { return n.Lines }),
		"citations":      field(func(n *model.NoteRecord) any { return n.Citations }),
		"userReferences": field(func(n *model.NoteRecord) any { return n.UserReferences }),
		"recIdNumber":    field(func(n *model.NoteRecord) any { return n.RecIDNumber }),
		"changeDate":     field(func(n *model.NoteRecord) any { return n.ChangeDate }),
	},
	model.KindNote: {
		"xref":      field(func(n *model.NoteStructure) any { return n.XRef }),
		"lines":     field(func(n *model.NoteStructure) any { return n.Lines }),
		"citations": field(func(n *model.NoteStructure) any { return n.Citations }),
	},
	model.KindCitation: {
		"sourceXRef":     field(func(c *model.Citation) any { return c.SourceXRef }),
		"description":    field(func(c *model.Citation) any { return c.Description }),
		"page":           field(func(c *model.Citation) any { return c.Page }),
		"eventCited":     field(func(c *model.Citation) any { return c.EventCited }),
		"roleInEvent":    field(func(c *model.Citation) any { return c.RoleInEvent }),
		"data":           field(func(c *model.Citation) any { return c.Data }),
		"textFromSource": field(func(c *model.Citation) any { return c.TextFromSource }),
		"multimedia":     field(func(c *model.Citation) any { return c.Multimedia }),
		"notes":          field(func(c *model.Citation) any { return c.Notes }),
		"certainty":      field(func(c *model.Citation) any { return c.Certainty }),
	},
	model.KindChangeDate: {
		"date":  field(func(c *model.ChangeDate) any { return c.Date }),
		"time":  field(func(c *model.ChangeDate) any { return c.Time }),
		"notes": field(func(c *model.ChangeDate) any { return c.Notes }),
	},
	model.KindUserReference: {
		"referenceNum": field(func(u *model.UserReference) any { return u.ReferenceNum }),
		"type":         field(func(u *model.UserReference) any { return u.Type }),
	},
	model.KindFamily: {
		"xref":           field(func(f *model.Family) any { return f.XRef }),
		"events":         field(func(f *model.Family) any { return f.Events }),
		"husbandXRef":    field(func(f *model.Family) any { return f.HusbandXRef }),
		"wifeXRef":       field(func(f *model.Family) any { return f.WifeXRef }),
		"childXRefs":     field(func(f *model.Family) any { return f.ChildXRefs }),
		"numChildren":    field(func(f *model.Family) any { return f.NumChildren }),
		"submitterXRefs": field(func(f *model.Family) any { return f.SubmitterXRefs }),
		"citations":      field(func(f *model.Family) any { return f.Citations }),
		"multimedia":     field(func(f *model.Family) any { return f.Multimedia }),
		"notes":          field(func(f *model.Family) any { return f.Notes }),
		"userReferences": field(func(f *model.Family) any { return f.UserReferences }),
		"recIdNumber":    field(func(f *model.Family) any { return f.RecIDNumber }),
		"changeDate":     field(func(f *model.Family) any { return f.ChangeDate }),
	},
	model.KindIndividual: {
		"xref":                   field(func(i *model.Individual) any { return i.XRef }),
		"restriction":            field(func(i *model.Individual) any { return i.Restriction }),
		"names":                  field(func(i *model.Individual) any { return i.Names }),
		"sex":                    field(func(i *model.Individual) any { return i.Sex }),
		"events":                 field(func(i *model.Individual) any { return i.Events }),
		"attributes":             field(func(i *model.Individual) any { return i.Attributes }),
		"childToFamily":          field(func(i *model.Individual) any { return i.ChildToFamily }),
		"spouseToFamily":         field(func(i *model.Individual) any { return i.SpouseToFamily }),
		"submitterXRefs":         field(func(i *model.Individual) any { return i.SubmitterXRefs }),
		"associations":           field(func(i *model.Individual) any { return i.Associations }),
		"aliases":                field(func(i *model.Individual) any { return i.Aliases }),
		"ancestorInterest":       field(func(i *model.Individual) any { return i.AncestorInterest }),
		"descendantInterest":     field(func(i *model.Individual) any { return i.DescendantInterest }),
		"citations":              field(func(i *model.Individual) any { return i.Citations }),
		"multimedia":             field(func(i *model.Individual) any { return i.Multimedia }),
		"notes":                  field(func(i *model.Individual) any { return i.Notes }),
		"permanentRecFileNumber": field(func(i *model.Individual) any { return i.PermanentRecFileNumber }),
		"ancestralFileNumber":    field(func(i *model.Individual) any { return i.AncestralFileNumber }),
		"userReferences":         field(func(i *model.Individual) any { return i.UserReferences }),
		"recIdNumber":            field(func(i *model.Individual) any { return i.RecIDNumber }),
		"changeDate":             field(func(i *model.Individual) any { return i.ChangeDate }),
	},
	model.KindEvent: {
		"tag":        field(func(e *model.Event) any { return e.Tag }),
		"value":      field(func(e *model.Event) any { return e.Value }),
		"type":       field(func(e *model.Event) any { return e.Type }),
		"date":       field(func(e *model.Event) any { return e.Date }),
		"place":      field(func(e *model.Event) any { return e.Place }),
		"address":    field(func(e *model.Event) any { return e.Address }),
		"age":        field(func(e *model.Event) any { return e.Age }),
		"respAgency": field(func(e *model.Event) any { return e.RespAgency }),
		"cause":      field(func(e *model.Event) any { return e.Cause }),
		"citations":  field(func(e *model.Event) any { return e.Citations }),
		"multimedia": field(func(e *model.Event) any { return e.Multimedia }),
		"notes":      field(func(e *model.Event) any { return e.Notes }),
		"familyXRef": field(func(e *model.Event) any { return e.FamilyXRef }),
		"adoptedBy":  field(func(e *model.Event) any { return e.AdoptedBy }),
		"husbandAge": field(func(e *model.Event) any { return e.HusbandAge }),
		"wifeAge":    field(func(e *model.Event) any { return e.WifeAge }),
	},
	model.KindChildToFamilyLink: {
		"familyXRef": field(func(l *model.ChildToFamilyLink) any { return l.FamilyXRef }),
		"pedigree":   field(func(l *model.ChildToFamilyLink) any { return l.Pedigree }),
		"notes":      field(func(l *model.ChildToFamilyLink) any { return l.Notes }),
	},
	model.KindSpouseToFamilyLink: {
		"familyXRef": field(func(l *model.SpouseToFamilyLink) any { return l.FamilyXRef }),
		"notes":      field(func(l *model.SpouseToFamilyLink) any { return l.Notes }),
	},
	model.KindAssociation: {
		"xref":         field(func(a *model.Association) any { return a.XRef }),
		"type":         field(func(a *model.Association) any { return a.Type }),
		"relationship": field(func(a *model.Association) any { return a.Relationship }),
		"citations":    field(func(a *model.Association) any { return a.Citations }),
		"notes":        field(func(a *model.Association) any { return a.Notes }),
	},
	model.KindPersonalName: {
		"basic":     field(func(n *model.PersonalName) any { return n.Basic }),
		"given":     field(func(n *model.PersonalName) any { return n.Given }),
		"surname":   field(func(n *model.PersonalName) any { return n.Surname }),
		"citations": field(func(n *model.PersonalName) any { return n.Citations }),
		"notes":     field(func(n *model.PersonalName) any { return n.Notes }),
	},
	model.KindPlace: {
		"name":      field(func(p *model.Place) any { return p.Name }),
		"form":      field(func(p *model.Place) any { return p.Form }),
		"citations": field(func(p *model.Place) any { return p.Citations }),
		"notes":     field(func(p *model.Place) any { return p.Notes }),
	},
}

// FieldValue returns the value of the named field of e.
func FieldValue(e model.Element, name string) (any, bool) {
	if isNil(e) {
		return nil, false
	}
	get, ok := fieldAccessors[e.Kind()][name]
	if !ok {
		return nil, false
	}
	return get(e), true
}

// FieldNames returns the field names known for kind, sorted.
func FieldNames(kind model.Kind) []string {
	fields := fieldAccessors[kind]
	out := make([]string, 0, len(fields))
	for name := range fields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
