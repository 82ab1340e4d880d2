package validate

import (
	"strings"

	"github.com/FocuswithJustin/gedcomkit/core/model"
)

// UnspecifiedSystemID is the source system id written by repairs.
const UnspecifiedSystemID = "UNSPECIFIED"

var supportedCharacterSets = map[string]bool{
	"ANSEL":   true,
	"UTF-8":   true,
	"UNICODE": true,
	"ASCII":   true,
}

var supportedVersions = map[string]bool{
	"5.5":   true,
	"5.5.1": true,
}

func (v *Validator) validateHeader() {
	g := v.gedcom
	if g.Header == nil {
		f := v.finding(g, SeverityError, MissingRequiredValue, "header")
		if !v.MayRepair(f) {
			return
		}
		g.Header = model.NewHeader()
		v.repaired(f, "added default header", "", "HEAD")
	}
	h := g.Header

	v.validateSourceSystem(h)
	v.validateGedcomVersion(h)
	v.validateCharacterSet(h)

	switch {
	case h.SubmitterXRef == "":
		f := v.finding(h, SeverityError, MissingRequiredValue, "submitterXRef")
		if keys := g.Submitters.Keys(); len(keys) > 0 && v.MayRepair(f) {
			h.SubmitterXRef = keys[0]
			v.repaired(f, "linked first submitter", "", keys[0])
		}
	default:
		v.checkLink(h, "submitterXRef", h.SubmitterXRef, v.hasSubmitter)
	}

	if h.SubmissionXRef != "" && (g.Submission == nil || g.Submission.XRef != h.SubmissionXRef) {
		v.finding(h, SeverityError, CrossReferenceNotFound, "submissionXRef")
	}

	if h.Time != "" && h.Date == "" {
		v.finding(h, SeverityWarning, MissingRequiredValue, "date")
	}
}

func (v *Validator) validateSourceSystem(h *model.Header) {
	if h.SourceSystem == nil {
		f := v.finding(h, SeverityError, MissingRequiredValue, "sourceSystem")
		if !v.MayRepair(f) {
			return
		}
		h.SourceSystem = &model.SourceSystem{SystemID: UnspecifiedSystemID}
		v.repaired(f, "added source system", "", UnspecifiedSystemID)
	}
	ss := h.SourceSystem
	if strings.TrimSpace(ss.SystemID) == "" {
		f := v.finding(ss, SeverityError, MissingRequiredValue, "systemId")
		if v.MayRepair(f) {
			before := ss.SystemID
			ss.SystemID = UnspecifiedSystemID
			v.repaired(f, "set system id", before, UnspecifiedSystemID)
		}
	}
	if c := ss.Corporation; c != nil {
		c.PhoneNumbers = v.pruneBlank(c, "phoneNumbers", c.PhoneNumbers)
	}
}

func (v *Validator) validateGedcomVersion(h *model.Header) {
	if h.GedcomVersion == nil {
		f := v.finding(h, SeverityError, MissingRequiredValue, "gedcomVersion")
		if !v.MayRepair(f) {
			return
		}
		h.GedcomVersion = &model.GedcomVersion{
			VersionNumber: model.DefaultGedcomVersion,
			GedcomForm:    model.DefaultGedcomForm,
		}
		v.repaired(f, "added GEDC structure", "", model.DefaultGedcomVersion)
	}
	gv := h.GedcomVersion

	switch {
	case strings.TrimSpace(gv.VersionNumber) == "":
		f := v.finding(gv, SeverityError, MissingRequiredValue, "versionNumber")
		if v.MayRepair(f) {
			before := gv.VersionNumber
			gv.VersionNumber = model.DefaultGedcomVersion
			v.repaired(f, "set GEDCOM version", before, gv.VersionNumber)
		}
	case !supportedVersions[gv.VersionNumber]:
		v.finding(gv, SeverityWarning, UnsupportedValue, "versionNumber")
	}

	switch {
	case strings.TrimSpace(gv.GedcomForm) == "":
		f := v.finding(gv, SeverityError, MissingRequiredValue, "gedcomForm")
		if v.MayRepair(f) {
			before := gv.GedcomForm
			gv.GedcomForm = model.DefaultGedcomForm
			v.repaired(f, "set GEDCOM form", before, gv.GedcomForm)
		}
	case !strings.EqualFold(gv.GedcomForm, model.DefaultGedcomForm):
		v.finding(gv, SeverityWarning, UnsupportedValue, "gedcomForm")
	}
}

func (v *Validator) validateCharacterSet(h *model.Header) {
	if h.CharacterSet == nil {
		f := v.finding(h, SeverityError, MissingRequiredValue, "characterSet")
		if !v.MayRepair(f) {
			return
		}
		h.CharacterSet = &model.CharacterSet{CharacterSetName: model.DefaultCharacterSet}
		v.repaired(f, "added character set", "", model.DefaultCharacterSet)
	}
	cs := h.CharacterSet

	switch {
	case strings.TrimSpace(cs.CharacterSetName) == "":
		f := v.finding(cs, SeverityError, MissingRequiredValue, "characterSetName")
		if v.MayRepair(f) {
			before := cs.CharacterSetName
			cs.CharacterSetName = model.DefaultCharacterSet
			v.repaired(f, "set character set", before, cs.CharacterSetName)
		}
	case !supportedCharacterSets[strings.ToUpper(cs.CharacterSetName)]:
		v.finding(cs, SeverityWarning, IllegalValue, "characterSetName")
	}
}
