package component

// AbilitySlot — состояние одного слота способности: Ready, пока
// CooldownLeft равен нулю, иначе OnCooldown.
type AbilitySlot struct {
	DefID        string
	CooldownLeft float64
	// Requested — внешний запрос на каст, применяется на ближайшем тике.
	Requested bool
}

// Ready сообщает, готов ли слот к применению.
func (s *AbilitySlot) Ready() bool {
	return s.CooldownLeft <= 0
}
