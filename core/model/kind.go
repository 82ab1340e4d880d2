package model

// Kind names the type of a node in the record graph.
type Kind string

// Kind constants, one per record or structure type.
const (
	KindGedcom             Kind = "GEDCOM"
	KindHeader             Kind = "HEADER"
	KindSourceSystem       Kind = "SOURCE_SYSTEM"
	KindCorporation        Kind = "CORPORATION"
	KindHeaderSourceData   Kind = "HEADER_SOURCE_DATA"
	KindGedcomVersion      Kind = "GEDCOM_VERSION"
	KindCharacterSet       Kind = "CHARACTER_SET"
	KindSubmission         Kind = "SUBMISSION"
	KindSubmitter          Kind = "SUBMITTER"
	KindRepository         Kind = "REPOSITORY"
	KindSource             Kind = "SOURCE"
	KindSourceData         Kind = "SOURCE_DATA"
	KindEventRecorded      Kind = "EVENT_RECORDED"
	KindRepositoryCitation Kind = "REPOSITORY_CITATION"
	KindCallNumber         Kind = "CALL_NUMBER"
	KindMultimedia         Kind = "MULTIMEDIA"
	KindMultimediaLink     Kind = "MULTIMEDIA_LINK"
	KindNoteRecord         Kind = "NOTE_RECORD"
	KindNote               Kind = "NOTE"
	KindCitation           Kind = "CITATION"
	KindCitationData       Kind = "CITATION_DATA"
	KindChangeDate         Kind = "CHANGE_DATE"
	KindAddress            Kind = "ADDRESS"
	KindUserReference      Kind = "USER_REFERENCE"
	KindFamily             Kind = "FAMILY"
	KindIndividual         Kind = "INDIVIDUAL"
	KindPersonalName       Kind = "PERSONAL_NAME"
	KindEvent              Kind = "EVENT"
	KindPlace              Kind = "PLACE"
	KindChildToFamilyLink  Kind = "CHILD_TO_FAMILY_LINK"
	KindSpouseToFamilyLink Kind = "SPOUSE_TO_FAMILY_LINK"
	KindAssociation        Kind = "ASSOCIATION"
	KindTrailer            Kind = "TRAILER"
)

// Element is implemented by every node of the record graph.
type Element interface {
	Kind() Kind
}

func (*Gedcom) Kind() Kind             { return KindGedcom }
func (*Header) Kind() Kind             { return KindHeader }
func (*SourceSystem) Kind() Kind       { return KindSourceSystem }
func (*Corporation) Kind() Kind        { return KindCorporation }
func (*HeaderSourceData) Kind() Kind   { return KindHeaderSourceData }
func (*GedcomVersion) Kind() Kind      { return KindGedcomVersion }
func (*CharacterSet) Kind() Kind       { return KindCharacterSet }
func (*Submission) Kind() Kind         { return KindSubmission }
func (*Submitter) Kind() Kind          { return KindSubmitter }
func (*Repository) Kind() Kind         { return KindRepository }
func (*Source) Kind() Kind             { return KindSource }
func (*SourceData) Kind() Kind         { return KindSourceData }
func (*EventRecorded) Kind() Kind      { return KindEventRecorded }
func (*RepositoryCitation) Kind() Kind { return KindRepositoryCitation }
func (*SourceCallNumber) Kind() Kind   { return KindCallNumber }
func (*Multimedia) Kind() Kind         { return KindMultimedia }
func (*MultimediaLink) Kind() Kind     { return KindMultimediaLink }
func (*NoteRecord) Kind() Kind         { return KindNoteRecord }
func (*NoteStructure) Kind() Kind      { return KindNote }
func (*Citation) Kind() Kind           { return KindCitation }
func (*CitationData) Kind() Kind       { return KindCitationData }
func (*ChangeDate) Kind() Kind         { return KindChangeDate }
func (*Address) Kind() Kind            { return KindAddress }
func (*UserReference) Kind() Kind      { return KindUserReference }
func (*Family) Kind() Kind             { return KindFamily }
func (*Individual) Kind() Kind         { return KindIndividual }
func (*PersonalName) Kind() Kind       { return KindPersonalName }
func (*Event) Kind() Kind              { return KindEvent }
func (*Place) Kind() Kind              { return KindPlace }
func (*ChildToFamilyLink) Kind() Kind  { return KindChildToFamilyLink }
func (*SpouseToFamilyLink) Kind() Kind { return KindSpouseToFamilyLink }
func (*Association) Kind() Kind        { return KindAssociation }
func (*Trailer) Kind() Kind            { return KindTrailer }
