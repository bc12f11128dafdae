//go:build !mobile

// stub.go - 桌面端构建时编译，使 ./... 在不带 mobile 标签时也能通过
package mobile

// Dummy 与 mobile.go 中的同名函数对应
func Dummy() {}
