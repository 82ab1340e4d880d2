package model

// types.go - record graph type definitions for GEDCOM 5.5.
// Field order inside each struct follows the order the fields are written.

// Default header values for a GEDCOM 5.5 lineage-linked file.
const (
	DefaultGedcomVersion = "5.5"
	DefaultGedcomForm    = "LINEAGE-LINKED"
	DefaultCharacterSet  = "ANSEL"
)

// Gedcom is the root of the record graph.
type Gedcom struct {
	// Header is the HEAD record. The writer substitutes a default header when nil.
	Header *Header

	// Submission is the optional SUBN record.
	Submission *Submission

	Submitters   *Index[*Submitter]
	Individuals  *Index[*Individual]
	Families     *Index[*Family]
	Multimedia   *Index[*Multimedia]
	Notes        *Index[*NoteRecord]
	Repositories *Index[*Repository]
	Sources      *Index[*Source]

	// Trailer marks the TRLR record. A nil Trailer means the input had none.
	Trailer *Trailer
}

// NewGedcom returns an empty graph with a default header and a trailer.
func NewGedcom() *Gedcom {
	return &Gedcom{
		Header:       NewHeader(),
		Submitters:   NewIndex[*Submitter](),
		Individuals:  NewIndex[*Individual](),
		Families:     NewIndex[*Family](),
		Multimedia:   NewIndex[*Multimedia](),
		Notes:        NewIndex[*NoteRecord](),
		Repositories: NewIndex[*Repository](),
		Sources:      NewIndex[*Source](),
		Trailer:      &Trailer{},
	}
}

// EnsureIndexes allocates any nil top-level index.
func (g *Gedcom) EnsureIndexes() {
	if g.Submitters == nil {
		g.Submitters = NewIndex[*Submitter]()
	}
	if g.Individuals == nil {
		g.Individuals = NewIndex[*Individual]()
	}
	if g.Families == nil {
		g.Families = NewIndex[*Family]()
	}
	if g.Multimedia == nil {
		g.Multimedia = NewIndex[*Multimedia]()
	}
	if g.Notes == nil {
		g.Notes = NewIndex[*NoteRecord]()
	}
	if g.Repositories == nil {
		g.Repositories = NewIndex[*Repository]()
	}
	if g.Sources == nil {
		g.Sources = NewIndex[*Source]()
	}
}

// Trailer is the TRLR record. It carries no data.
type Trailer struct{}

// Header is the HEAD record.
type Header struct {
	SourceSystem      *SourceSystem
	DestinationSystem string

	// Date and Time of transmission. Time is only written when Date is set.
	Date string
	Time string

	// SubmitterXRef links to a record in Gedcom.Submitters.
	SubmitterXRef string
	// SubmissionXRef links to Gedcom.Submission.
	SubmissionXRef string

	FileName      string
	CopyrightData string
	GedcomVersion *GedcomVersion
	CharacterSet  *CharacterSet
	Language      string

	// PlaceStructure is the PLAC.FORM jurisdiction hint.
	PlaceStructure string

	Notes []string
}

// NewHeader returns a header carrying the default version and character set.
func NewHeader() *Header {
	return &Header{
		GedcomVersion: &GedcomVersion{
			VersionNumber: DefaultGedcomVersion,
			GedcomForm:    DefaultGedcomForm,
		},
		CharacterSet: &CharacterSet{CharacterSetName: DefaultCharacterSet},
	}
}

// SourceSystem identifies the program that produced the data.
type SourceSystem struct {
	SystemID    string
	VersionNum  string
	ProductName string
	Corporation *Corporation
	SourceData  *HeaderSourceData
}

// Corporation is the business behind a source system.
type Corporation struct {
	BusinessName string
	Address      *Address
	PhoneNumbers []string
}

// HeaderSourceData names the electronic source the data came from.
type HeaderSourceData struct {
	Name        string
	PublishDate string
	Copyright   string
}

// GedcomVersion is the GEDC structure.
type GedcomVersion struct {
	VersionNumber string
	GedcomForm    string
}

// CharacterSet is the CHAR structure.
type CharacterSet struct {
	CharacterSetName string
	VersionNum       string
}

// Submission is the SUBN record.
type Submission struct {
	XRef                 string
	SubmitterXRef        string
	NameOfFamilyFile     string
	TempleCode           string
	AncestorsCount       string
	DescendantsCount     string
	OrdinanceProcessFlag string
	RecIDNumber          string
}

// Submitter is a SUBM record.
type Submitter struct {
	XRef         string
	Name         string
	Address      *Address
	Multimedia   []*MultimediaLink
	LanguagePref []string

	// PhoneNumbers are not part of the 5.5 SUBM record but appear in real
	// files, so they are read and written back.
	PhoneNumbers []string

	RegFileNumber string
	RecIDNumber   string
	ChangeDate    *ChangeDate
}

// Repository is a REPO record.
type Repository struct {
	XRef           string
	Name           string
	Address        *Address
	Notes          []*NoteStructure
	UserReferences []*UserReference
	RecIDNumber    string
	RegFileNumber  string
	PhoneNumbers   []string
	ChangeDate     *ChangeDate
}

// Source is a SOUR record.
type Source struct {
	XRef               string
	Data               *SourceData
	OriginatorsAuthors []string
	Title              []string
	SourceFiledBy      string
	PublicationFacts   []string
	SourceText         []string
	RepositoryCitation *RepositoryCitation
	Multimedia         []*MultimediaLink
	Notes              []*NoteStructure
	UserReferences     []*UserReference
	RecIDNumber        string
	RegFileNumber      string
	ChangeDate         *ChangeDate
}

// SourceData is the DATA block of a source record.
type SourceData struct {
	EventsRecorded []*EventRecorded
	RespAgency     string
	Notes          []*NoteStructure
}

// EventRecorded is one EVEN entry inside SourceData.
type EventRecorded struct {
	EventType    string
	DatePeriod   string
	Jurisdiction string
}

// RepositoryCitation links a source to the repository holding it.
type RepositoryCitation struct {
	RepositoryXRef string
	Notes          []*NoteStructure
	CallNumbers    []*SourceCallNumber
}

// SourceCallNumber is a CALN entry with an optional media type.
type SourceCallNumber struct {
	CallNumber string
	MediaType  string
}

// Multimedia is an OBJE record.
type Multimedia struct {
	XRef                string
	Format              string
	Title               string
	Notes               []*NoteStructure
	Blob                []string
	ContinuedObjectXRef string
	UserReferences      []*UserReference
	RecIDNumber         string
	ChangeDate          *ChangeDate
}

// MultimediaLink embeds a multimedia reference inside another record.
// When XRef is set the link points at Gedcom.Multimedia and the remaining
// fields are ignored; otherwise it describes an external file inline.
type MultimediaLink struct {
	XRef          string
	Format        string
	Title         string
	FileReference string
	Notes         []*NoteStructure
}

// NoteRecord is a free-standing NOTE record.
type NoteRecord struct {
	XRef           string
	Lines          []string
	Citations      []*Citation
	UserReferences []*UserReference
	RecIDNumber    string
	ChangeDate     *ChangeDate
}

// NoteStructure is a note attached to another record: either a pointer to
// a NoteRecord (XRef set) or inline text.
type NoteStructure struct {
	XRef      string
	Lines     []string
	Citations []*Citation
}

// Citation is a SOURCE_CITATION: either a pointer to a Source (SourceXRef
// set) or an inline description.
type Citation struct {
	SourceXRef  string
	Description []string

	Page        string
	EventCited  string
	RoleInEvent string
	Data        *CitationData

	// TextFromSource holds the TEXT entries of the inline form.
	TextFromSource [][]string

	Multimedia []*MultimediaLink
	Notes      []*NoteStructure
	Certainty  string
}

// CitationData is the DATA block of a pointer citation.
type CitationData struct {
	EntryDate string
	Text      [][]string
}

// ChangeDate is a CHAN block.
type ChangeDate struct {
	Date  string
	Time  string
	Notes []*NoteStructure
}

// Address is an ADDRESS_STRUCTURE.
type Address struct {
	Lines         []string
	Addr1         string
	Addr2         string
	City          string
	StateProvince string
	PostalCode    string
	Country       string
}

// UserReference is a REFN entry.
type UserReference struct {
	ReferenceNum string
	Type         string
}

// Family is a FAM record.
type Family struct {
	XRef           string
	Events         []*Event
	HusbandXRef    string
	WifeXRef       string
	ChildXRefs     []string
	NumChildren    string
	SubmitterXRefs []string
	Citations      []*Citation
	Multimedia     []*MultimediaLink
	Notes          []*NoteStructure
	UserReferences []*UserReference
	RecIDNumber    string
	ChangeDate     *ChangeDate
}

// Individual is an INDI record.
type Individual struct {
	XRef                   string
	Restriction            string
	Names                  []*PersonalName
	Sex                    string
	Events                 []*Event
	Attributes             []*Event
	ChildToFamily          []*ChildToFamilyLink
	SpouseToFamily         []*SpouseToFamilyLink
	SubmitterXRefs         []string
	Associations           []*Association
	Aliases                []string
	AncestorInterest       []string
	DescendantInterest     []string
	Citations              []*Citation
	Multimedia             []*MultimediaLink
	Notes                  []*NoteStructure
	PermanentRecFileNumber string
	AncestralFileNumber    string
	UserReferences         []*UserReference
	RecIDNumber            string
	ChangeDate             *ChangeDate
}

// PersonalName is a PERSONAL_NAME_STRUCTURE.
type PersonalName struct {
	Basic         string
	Prefix        string
	Given         string
	Nickname      string
	SurnamePrefix string
	Surname       string
	Suffix        string
	Citations     []*Citation
	Notes         []*NoteStructure
}

// Event is an individual event, individual attribute or family event.
// Value carries "Y" for asserted events, the descriptor of an EVEN or the
// attribute value (OCCU, TITL, ...).
type Event struct {
	Tag        string
	Value      string
	Type       string
	Date       string
	Place      *Place
	Address    *Address
	Age        string
	RespAgency string
	Cause      string
	Citations  []*Citation
	Multimedia []*MultimediaLink
	Notes      []*NoteStructure

	// FamilyXRef is the FAMC link of BIRT, CHR and ADOP events.
	FamilyXRef string
	// AdoptedBy is the ADOP qualifier (HUSB, WIFE, BOTH) of an ADOP event.
	AdoptedBy string

	// HusbandAge and WifeAge apply to family events.
	HusbandAge string
	WifeAge    string
}

// Place is a PLACE_STRUCTURE.
type Place struct {
	Name      string
	Form      string
	Citations []*Citation
	Notes     []*NoteStructure
}

// ChildToFamilyLink is a FAMC link on an individual.
type ChildToFamilyLink struct {
	FamilyXRef string
	Pedigree   string
	Notes      []*NoteStructure
}

// SpouseToFamilyLink is a FAMS link on an individual.
type SpouseToFamilyLink struct {
	FamilyXRef string
	Notes      []*NoteStructure
}

// Association is an ASSO link from one individual to another record.
type Association struct {
	XRef         string
	Type         string
	Relationship string
	Citations    []*Citation
	Notes        []*NoteStructure
}
