package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var errEmptyPassword = errors.New("密码不能为空")

// 生成 ADMIN_PASSWORD_HASH，避免在环境中保存明文密码
func main() {
	password, err := readPassword(os.Getenv("ADMIN_PASSWORD"), os.Stdin, int(os.Stdin.Fd()))
	if err != nil {
		log.Fatal("读取密码失败:", err)
	}

	line, err := hashLine(password, bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("密码加密失败:", err)
	}
	fmt.Println(line)
}

// readPassword 优先使用环境变量；终端输入时关闭回显
func readPassword(fromEnv string, in io.Reader, fd int) (string, error) {
	if password := strings.TrimSpace(fromEnv); password != "" {
		return password, nil
	}

	fmt.Fprint(os.Stderr, "password: ")
	var raw string
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		raw = string(secret)
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		raw = line
	}

	password := strings.TrimSpace(raw)
	if password == "" {
		return "", errEmptyPassword
	}
	return password, nil
}

// hashLine 输出可直接写入 .env 的一行，单引号避免 $ 被展开
func hashLine(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ADMIN_PASSWORD_HASH='%s'", hashed), nil
}
