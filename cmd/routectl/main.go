// routectl — консольный клиент маршрутов интеграций поверх удалённого API.
package main

func main() {
	Execute()
}
