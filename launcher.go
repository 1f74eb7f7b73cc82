//go:build ignore

// Локальный запуск: сервер на фоне и сборка CLI-клиента.
//
//	go run launcher.go
package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

func main() {
	fmt.Println("Запуск bookmarks...")

	clientName := "bookmarks"
	if runtime.GOOS == "windows" {
		clientName = "bookmarks.exe"
	}
	// запускаем сервер на фоне
	server := exec.Command("go", "run", "./cmd/server", "-config", "./configs/server.yaml")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	time.Sleep(3 * time.Second)
	// собираем клиента
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/bookmarks")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		if err := build.Run(); err != nil {
			fmt.Printf("Ошибка сборки клиента: %v\n", err)
		}
		// если не винда даём права
		if runtime.GOOS != "windows" {
			os.Chmod(clientName, 0755)
		}
	}

	fmt.Println("Сервер запущен")
	// пишем как запускать клиента
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\bookmarks.exe signup --email you@example.com")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./bookmarks signup --email you@example.com")
	}

	server.Wait()
}
