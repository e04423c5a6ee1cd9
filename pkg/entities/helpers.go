package entities

import "github.com/gonewx/alieninvasion/pkg/ecs"

// DestroyAll 标记所有带 T 组件的实体并立即清除
// 用于整队清空（开局、飞船被击中、舰队重建）
func DestroyAll[T any](em *ecs.EntityManager) int {
	n := ecs.DestroyAllWith[T](em)
	em.RemoveMarkedEntities()
	return n
}
