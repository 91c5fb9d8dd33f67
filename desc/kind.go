package desc

import "fmt"

// Kind identifies the category of a described node. The numeric codes follow
// the standard document-node taxonomy and are part of the wire contract;
// they must never be renumbered.
type Kind int

const (
	ElementKind               Kind = 1
	AttributeKind             Kind = 2
	TextKind                  Kind = 3
	CDataSectionKind          Kind = 4
	ProcessingInstructionKind Kind = 7
	CommentKind               Kind = 8
	DocumentKind              Kind = 9
	DocumentTypeKind          Kind = 10
	DocumentFragmentKind      Kind = 11
)

// Reserved names for kinds whose node name is fixed.
const (
	TextName             = "#text"
	CDataSectionName     = "#cdata-section"
	CommentName          = "#comment"
	DocumentName         = "#document"
	DocumentFragmentName = "#document-fragment"
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ElementKind:               "Element",
		AttributeKind:             "Attribute",
		TextKind:                  "Text",
		CDataSectionKind:          "CDataSection",
		ProcessingInstructionKind: "ProcessingInstruction",
		CommentKind:               "Comment",
		DocumentKind:              "Document",
		DocumentTypeKind:          "DocumentType",
		DocumentFragmentKind:      "DocumentFragment",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func Kinds() []Kind {
	return []Kind{
		ElementKind,
		AttributeKind,
		TextKind,
		CDataSectionKind,
		ProcessingInstructionKind,
		CommentKind,
		DocumentKind,
		DocumentTypeKind,
		DocumentFragmentKind,
	}
}

func validKind(k Kind) bool {
	switch k {
	case ElementKind, AttributeKind, TextKind, CDataSectionKind,
		ProcessingInstructionKind, CommentKind, DocumentKind,
		DocumentTypeKind, DocumentFragmentKind:
		return true
	}
	return false
}

// FixedName returns the reserved sentinel name for kinds whose name is not
// chosen by the caller, and "" for kinds that carry a caller-chosen name
// (Element, Attribute, ProcessingInstruction, DocumentType).
func (k Kind) FixedName() string {
	switch k {
	case TextKind:
		return TextName
	case CDataSectionKind:
		return CDataSectionName
	case CommentKind:
		return CommentName
	case DocumentKind:
		return DocumentName
	case DocumentFragmentKind:
		return DocumentFragmentName
	}
	return ""
}

// HasValue reports whether nodes of this kind carry character data.
func (k Kind) HasValue() bool {
	switch k {
	case AttributeKind, TextKind, CDataSectionKind,
		ProcessingInstructionKind, CommentKind:
		return true
	}
	return false
}

// IsLeaf reports whether nodes of this kind never hold children.
func (k Kind) IsLeaf() bool {
	switch k {
	case ElementKind, DocumentKind, DocumentFragmentKind:
		return false
	default:
		return true
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Element":               ElementKind,
		"Attribute":             AttributeKind,
		"Text":                  TextKind,
		"CDataSection":          CDataSectionKind,
		"ProcessingInstruction": ProcessingInstructionKind,
		"Comment":               CommentKind,
		"Document":              DocumentKind,
		"DocumentType":          DocumentTypeKind,
		"DocumentFragment":      DocumentFragmentKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}
