package dom

// CharacterData is https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data   string
	Length int
}

// https://dom.spec.whatwg.org/#text
type Text struct {
	*CharacterData
}

// Comment is https://dom.spec.whatwg.org/#interface-comment
type Comment struct {
	*CharacterData
}

// https://dom.spec.whatwg.org/#documenttype
type DocumentType struct {
	Name, PublicID, SystemID string
}
