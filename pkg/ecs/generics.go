package ecs

import "reflect"

// 泛型访问器
//
// 基于 reflect.Type 的 API 需要调用方自己做类型断言，
// 下面这些包装函数把断言收拢在一处，系统代码只写组件类型即可：
//
//	card, ok := ecs.GetComponent[*components.CardComponent](em, id)

// typeOf 返回类型参数 T 对应的 reflect.Type
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// AddComponent 为实体添加组件（类型由参数推断）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// RemoveComponent 移除实体的 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有 A 组件的实体
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[A]())
}

// GetEntitiesWith2 查询同时拥有 A、B 组件的实体
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[A](), typeOf[B]())
}

// GetEntitiesWith3 查询同时拥有 A、B、C 组件的实体
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[A](), typeOf[B](), typeOf[C]())
}
