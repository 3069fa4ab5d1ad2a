package main

import "payrolldesk/internal/app/server"

func main() {
	server.Run()
}
