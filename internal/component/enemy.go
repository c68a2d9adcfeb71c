// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID         string // ID архетипа из enemies.yaml
	ContactDamage int    // Урон базе при утечке
	KillReward    int    // Монеты за убийство
}
