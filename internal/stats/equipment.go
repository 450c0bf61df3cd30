// internal/stats/equipment.go
package stats

// ItemBonus — вклад одного надетого предмета в характеристики.
// Сами предметы (инвентарь, гача, магазин) живут во внешнем слое;
// ядру важны только итоговые бонусы.
type ItemBonus struct {
	ItemID  string
	Attack  int
	Defense int
	Health  int
}

// Equip добавляет бонус предмета. Изменение подхватывается боевым
// циклом на границе следующего тика.
func (n *Ninja) Equip(bonus ItemBonus) {
	n.Equipment = append(n.Equipment, bonus)
}

// Unequip снимает предмет по ID. Отсутствующий предмет — no-op.
func (n *Ninja) Unequip(itemID string) {
	for i, item := range n.Equipment {
		if item.ItemID == itemID {
			n.Equipment = append(n.Equipment[:i], n.Equipment[i+1:]...)
			return
		}
	}
}
