package components

// StarComponent 标记背景星星，纯装饰，不参与碰撞
type StarComponent struct{}
