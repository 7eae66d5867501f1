//go:build integration

package sftp

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/bornholm/nokdoc/internal/filesystem/testsuite"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-units"
	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/ssh"
)

func TestPublish(t *testing.T) {
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "docker.io/atmoz/sftp:alpine@sha256:2464208ceb9e9562139d36a9045ec5eea4a0954c88a8bdd603e579d1a4ec0d03",
		Cmd:          []string{"nokdoc:nokdoc:::data"},
		ExposedPorts: []string{"22/tcp"},
		HostConfigModifier: func(hc *container.HostConfig) {
			hc.Resources = container.Resources{
				Ulimits: []*units.Ulimit{
					{
						Name: "nofile",
						Hard: 65536,
						Soft: 65536,
					},
				},
			}
		},
		WaitingFor: wait.ForLog("listening on 0.0.0.0 port 22"),
	}
	sftpContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer func() {
		if err := sftpContainer.Terminate(ctx); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}()

	port, err := sftpContainer.MappedPort(ctx, "22")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	addr := fmt.Sprintf("127.0.0.1:%v", port.Port())
	dsn := fmt.Sprintf("sftp://nokdoc:nokdoc@%s/data/out?hostKey=insecure-ignore&timeout=10s", addr)

	testsuite.TestPublish(t, dsn, func(name string) ([]byte, error) {
		sshClient, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
			User:            "nokdoc",
			Auth:            []ssh.AuthMethod{ssh.Password("nokdoc")},
			HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		defer sshClient.Close()

		client, err := sftp.NewClient(sshClient)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		defer client.Close()

		file, err := client.Open("data/out/" + name)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return data, nil
	})
}
