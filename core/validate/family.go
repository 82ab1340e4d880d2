package validate

import (
	"strings"

	"github.com/FocuswithJustin/gedcomkit/core/model"
)

var sexValues = map[string]bool{"M": true, "F": true, "U": true}

func (v *Validator) validateFamily(key string, fam *model.Family) {
	if fam == nil {
		return
	}
	v.checkRecordXRef(key, fam, &fam.XRef)
	v.validateEvents(fam.Events)

	if v.checkLink(fam, "husbandXRef", fam.HusbandXRef, v.hasIndividual) && fam.HusbandXRef != "" {
		v.checkSpouseBackLink(key, fam, "husbandXRef", fam.HusbandXRef)
	}
	if v.checkLink(fam, "wifeXRef", fam.WifeXRef, v.hasIndividual) && fam.WifeXRef != "" {
		v.checkSpouseBackLink(key, fam, "wifeXRef", fam.WifeXRef)
	}

	fam.ChildXRefs = v.pruneBlank(fam, "childXRefs", fam.ChildXRefs)
	seen := make(map[string]bool, len(fam.ChildXRefs))
	dup := false
	for _, c := range fam.ChildXRefs {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if seen[c] {
			dup = true
			continue
		}
		seen[c] = true
		if !v.checkLink(fam, "childXRefs", c, v.hasIndividual) {
			continue
		}
		child, _ := v.gedcom.Individuals.Get(c)
		if child != nil && !hasChildLink(child, key) {
			f := v.finding(fam, SeverityWarning, MissingBackLink, "childXRefs")
			f.AddRelatedItem(child)
			if v.MayRepair(f) {
				child.ChildToFamily = append(child.ChildToFamily, &model.ChildToFamilyLink{FamilyXRef: key})
				v.repaired(f, "added FAMC link to child", "", key)
			}
		}
	}
	if dup {
		f := v.finding(fam, SeverityWarning, DuplicateValue, "childXRefs")
		if v.MayRepair(f) {
			before := strings.Join(fam.ChildXRefs, " ")
			fam.ChildXRefs = dedupe(fam.ChildXRefs)
			v.repaired(f, "removed duplicate children", before, strings.Join(fam.ChildXRefs, " "))
		}
	}

	fam.SubmitterXRefs = v.checkLinks(fam, "submitterXRefs", fam.SubmitterXRefs, v.hasSubmitter)
	v.validateCitations(fam.Citations)
	v.validateMultimediaLinks(fam.Multimedia)
	v.validateNotes(fam.Notes)
	v.validateUserReferences(fam.UserReferences)
	v.validateChangeDate(fam.ChangeDate)
}

func (v *Validator) checkSpouseBackLink(key string, fam *model.Family, field, spouseXRef string) {
	spouse, _ := v.gedcom.Individuals.Get(spouseXRef)
	if spouse == nil || hasSpouseLink(spouse, key) {
		return
	}
	f := v.finding(fam, SeverityWarning, MissingBackLink, field)
	f.AddRelatedItem(spouse)
	if v.MayRepair(f) {
		spouse.SpouseToFamily = append(spouse.SpouseToFamily, &model.SpouseToFamilyLink{FamilyXRef: key})
		v.repaired(f, "added FAMS link to spouse", "", key)
	}
}

func (v *Validator) validateIndividual(key string, ind *model.Individual) {
	if ind == nil {
		return
	}
	v.checkRecordXRef(key, ind, &ind.XRef)

	for _, n := range ind.Names {
		if n == nil {
			continue
		}
		v.validateCitations(n.Citations)
		v.validateNotes(n.Notes)
	}

	if ind.Sex != "" && !sexValues[ind.Sex] {
		f := v.finding(ind, SeverityWarning, IllegalValue, "sex")
		upper := strings.ToUpper(strings.TrimSpace(ind.Sex))
		if sexValues[upper] && v.MayRepair(f) {
			before := ind.Sex
			ind.Sex = upper
			v.repaired(f, "normalized sex", before, upper)
		}
	}

	v.validateEvents(ind.Events)
	v.validateEvents(ind.Attributes)

	for _, l := range ind.ChildToFamily {
		if l == nil {
			continue
		}
		if v.checkLink(l, "familyXRef", l.FamilyXRef, v.hasFamily) && l.FamilyXRef != "" {
			fam, _ := v.gedcom.Families.Get(l.FamilyXRef)
			if fam != nil && !contains(fam.ChildXRefs, key) {
				f := v.finding(ind, SeverityWarning, MissingBackLink, "childToFamily")
				f.AddRelatedItem(fam)
				if v.MayRepair(f) {
					fam.ChildXRefs = append(fam.ChildXRefs, key)
					v.repaired(f, "added CHIL link to family", "", key)
				}
			}
		}
		v.validateNotes(l.Notes)
	}

	for _, l := range ind.SpouseToFamily {
		if l == nil {
			continue
		}
		if v.checkLink(l, "familyXRef", l.FamilyXRef, v.hasFamily) && l.FamilyXRef != "" {
			fam, _ := v.gedcom.Families.Get(l.FamilyXRef)
			if fam != nil && fam.HusbandXRef != key && fam.WifeXRef != key {
				f := v.finding(ind, SeverityWarning, MissingBackLink, "spouseToFamily")
				f.AddRelatedItem(fam)
			}
		}
		v.validateNotes(l.Notes)
	}

	ind.SubmitterXRefs = v.checkLinks(ind, "submitterXRefs", ind.SubmitterXRefs, v.hasSubmitter)

	for _, a := range ind.Associations {
		if a == nil {
			continue
		}
		v.checkLink(a, "xref", a.XRef, v.hasAnyRecord)
		if a.XRef == "" {
			v.finding(a, SeverityError, MissingRequiredValue, "xref")
		}
		if strings.TrimSpace(a.Type) == "" {
			f := v.finding(a, SeverityError, MissingRequiredValue, "type")
			if v.hasIndividual(a.XRef) && v.MayRepair(f) {
				a.Type = "INDI"
				v.repaired(f, "set association type", "", "INDI")
			}
		}
		if strings.TrimSpace(a.Relationship) == "" {
			v.finding(a, SeverityError, MissingRequiredValue, "relationship")
		}
		v.validateCitations(a.Citations)
		v.validateNotes(a.Notes)
	}

	ind.Aliases = v.checkLinks(ind, "aliases", ind.Aliases, v.hasIndividual)
	ind.AncestorInterest = v.checkLinks(ind, "ancestorInterest", ind.AncestorInterest, v.hasSubmitter)
	ind.DescendantInterest = v.checkLinks(ind, "descendantInterest", ind.DescendantInterest, v.hasSubmitter)
	v.validateCitations(ind.Citations)
	v.validateMultimediaLinks(ind.Multimedia)
	v.validateNotes(ind.Notes)
	v.validateUserReferences(ind.UserReferences)
	v.validateChangeDate(ind.ChangeDate)
}

func hasChildLink(ind *model.Individual, famXRef string) bool {
	for _, l := range ind.ChildToFamily {
		if l != nil && l.FamilyXRef == famXRef {
			return true
		}
	}
	return false
}

func hasSpouseLink(ind *model.Individual, famXRef string) bool {
	for _, l := range ind.SpouseToFamily {
		if l != nil && l.FamilyXRef == famXRef {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
