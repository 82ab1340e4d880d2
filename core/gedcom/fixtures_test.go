package gedcom

import (
	"strings"
	"testing"

	"github.com/FocuswithJustin/gedcomkit/core/model"
)

// scenarioGraph is the minimal document: a header from ACME, one submitter
// and a trailer.
func scenarioGraph() *model.Gedcom {
	g := model.NewGedcom()
	g.Header.SourceSystem = &model.SourceSystem{SystemID: "ACME", VersionNum: "1.0"}
	g.Submitters.Put("@SUBM1@", &model.Submitter{XRef: "@SUBM1@", Name: "Jane Doe"})
	return g
}

// richGraph exercises every record kind the encoder writes.
func richGraph() *model.Gedcom {
	g := scenarioGraph()
	h := g.Header
	h.SourceSystem.ProductName = "Acme Tree"
	h.SourceSystem.Corporation = &model.Corporation{
		BusinessName: "Acme Inc",
		Address:      &model.Address{Lines: []string{"1 Main"}},
		PhoneNumbers: []string{"555"},
	}
	h.SourceSystem.SourceData = &model.HeaderSourceData{Name: "Census", PublishDate: "2000", Copyright: "(c)"}
	h.DestinationSystem = "ANSTFILE"
	h.Date = "1 JAN 2020"
	h.Time = "10:00"
	h.SubmissionXRef = "@SUBN1@"
	h.FileName = "tree.ged"
	h.CopyrightData = "Public"
	h.Language = "English"
	h.PlaceStructure = "City, County"
	h.Notes = []string{"Hello", "World"}

	g.Submission = &model.Submission{XRef: "@SUBN1@", SubmitterXRef: "@SUBM1@", AncestorsCount: "2"}

	g.Individuals.Put("@I1@", &model.Individual{
		XRef:  "@I1@",
		Names: []*model.PersonalName{{Basic: "John /Smith/", Given: "John", Surname: "Smith"}},
		Sex:   "M",
		Events: []*model.Event{{
			Tag:   "BIRT",
			Date:  "1 JAN 1900",
			Place: &model.Place{Name: "Boston"},
		}},
		SpouseToFamily: []*model.SpouseToFamilyLink{{FamilyXRef: "@F1@"}},
		Citations: []*model.Citation{{
			SourceXRef:  "@S1@",
			Page:        "12",
			EventCited:  "BIRT",
			RoleInEvent: "CHIL",
			Data:        &model.CitationData{EntryDate: "1 JAN 1900", Text: [][]string{{"entry"}}},
			Certainty:   "3",
		}},
		Notes: []*model.NoteStructure{
			{XRef: "@N1@"},
			{
				Lines: []string{"inline"},
				Citations: []*model.Citation{{
					Description:    []string{"family bible"},
					TextFromSource: [][]string{{"p. 4"}},
				}},
			},
		},
	})
	g.Individuals.Put("@I2@", &model.Individual{
		XRef:           "@I2@",
		Names:          []*model.PersonalName{{Basic: "Mary /Jones/"}},
		Sex:            "F",
		SpouseToFamily: []*model.SpouseToFamilyLink{{FamilyXRef: "@F1@"}},
	})
	g.Individuals.Put("@I3@", &model.Individual{
		XRef:          "@I3@",
		Events:        []*model.Event{{Tag: "BIRT", Date: "2 FEB 1925", FamilyXRef: "@F1@"}},
		Attributes:    []*model.Event{{Tag: "OCCU", Value: "Farmer"}},
		ChildToFamily: []*model.ChildToFamilyLink{{FamilyXRef: "@F1@", Pedigree: "birth"}},
	})
	g.Families.Put("@F1@", &model.Family{
		XRef:        "@F1@",
		Events:      []*model.Event{{Tag: "MARR", Value: "Y", Date: "3 MAR 1920", HusbandAge: "25"}},
		HusbandXRef: "@I1@",
		WifeXRef:    "@I2@",
		ChildXRefs:  []string{"@I3@"},
		Notes:       []*model.NoteStructure{{Lines: []string{"Married in church"}}},
	})
	g.Multimedia.Put("@M1@", &model.Multimedia{
		XRef:   "@M1@",
		Format: "jpeg",
		Title:  "Portrait",
		Blob:   []string{"abc", "def"},
	})
	g.Notes.Put("@N1@", &model.NoteRecord{XRef: "@N1@", Lines: []string{"First", "", "Third"}})
	g.Repositories.Put("@R1@", &model.Repository{
		XRef:           "@R1@",
		Name:           "Archive",
		Address:        &model.Address{Lines: []string{"1 Main St"}, City: "Salem"},
		UserReferences: []*model.UserReference{{ReferenceNum: "R-1", Type: "local"}},
		PhoneNumbers:   []string{"555-0100"},
		ChangeDate:     &model.ChangeDate{Date: "1 JAN 2000", Time: "12:00"},
	})
	g.Sources.Put("@S1@", &model.Source{
		XRef:  "@S1@",
		Title: []string{"Parish register", "1900-1950"},
	})
	g.Sources.Put("@S2@", &model.Source{
		XRef: "@S2@",
		Data: &model.SourceData{
			EventsRecorded: []*model.EventRecorded{{EventType: "BIRT", DatePeriod: "FROM 1900 TO 1950", Jurisdiction: "Salem"}},
			RespAgency:     "Parish",
		},
		RepositoryCitation: &model.RepositoryCitation{
			RepositoryXRef: "@R1@",
			CallNumbers:    []*model.SourceCallNumber{{CallNumber: "B-12", MediaType: "book"}},
		},
	})
	return g
}

func mustWriter(t *testing.T, g *model.Gedcom, opts ...WriterOption) *Writer {
	t.Helper()
	w, err := NewWriter(g, opts...)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	return w
}

func mustEncode(t *testing.T, g *model.Gedcom, opts ...WriterOption) string {
	t.Helper()
	data, err := mustWriter(t, g, opts...).Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return string(data)
}

// lines joins want lines with LF terminators.
func lines(want ...string) string {
	return strings.Join(want, "\n") + "\n"
}
