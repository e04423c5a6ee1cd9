package components

// BulletComponent 标记子弹实体，子弹始终向上移动
type BulletComponent struct{}
