package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"listproject/config"
	"listproject/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/google/uuid"
)

// Client sends operation items to the server's queue. Each client keeps its
// own FIFO message group so its operations arrive in the order they were
// sent.
type Client struct {
	queue    *sqs.SQS
	queueUrl string
	groupId  string
}

func NewClient(conf *config.Config) (*Client, error) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(conf.Aws.Region),
		Credentials: credentials.NewStaticCredentials(conf.Aws.ClientId, conf.Aws.ClientSecret, conf.Aws.ClientToken),
	}))

	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, fmt.Errorf("Cannot assign session with credentials\n%s", err)
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	return &Client{
		queue:    sqs.New(sess),
		queueUrl: conf.Aws.QueueUrl,
		groupId:  id.String(),
	}, nil
}

func (c *Client) SendMessage(item *types.Item) error {
	req, err := json.Marshal(item)
	if err != nil {
		return err
	}
	_, err = c.queue.SendMessage(&sqs.SendMessageInput{
		DelaySeconds:           aws.Int64(0),
		MessageBody:            aws.String(string(req)),
		QueueUrl:               &c.queueUrl,
		MessageGroupId:         aws.String(c.groupId),
		MessageDeduplicationId: aws.String(createDeduplicationId(string(req))),
	})
	return err
}

func (c *Client) PushItem(value string) {
	item := &types.Item{Action: types.PushItem, Value: value}
	go c.SendMessage(item)
}

func (c *Client) PopItem() {
	item := &types.Item{Action: types.PopItem}
	go c.SendMessage(item)
}

func (c *Client) UnshiftItem(value string) {
	item := &types.Item{Action: types.UnshiftItem, Value: value}
	go c.SendMessage(item)
}

func (c *Client) ShiftItem() {
	item := &types.Item{Action: types.ShiftItem}
	go c.SendMessage(item)
}

func (c *Client) GetItem(index int) {
	item := &types.Item{Action: types.GetItem, Index: index}
	go c.SendMessage(item)
}

func (c *Client) SetItem(index int, value string) {
	item := &types.Item{Action: types.SetItem, Index: index, Value: value}
	go c.SendMessage(item)
}

func (c *Client) InsertItem(index int, value string) {
	item := &types.Item{Action: types.InsertItem, Index: index, Value: value}
	go c.SendMessage(item)
}

func (c *Client) RemoveItem(index int) {
	item := &types.Item{Action: types.RemoveItem, Index: index}
	go c.SendMessage(item)
}

func (c *Client) InspectList() {
	item := &types.Item{Action: types.InspectList}
	go c.SendMessage(item)
}

// ClientsManager multiplexes many logical clients over one input stream of
// "<clientId> <item>" lines, creating clients on first use and dropping the
// ones that stay quiet.
type ClientsManager struct {
	clients   map[string]*ClientUsage
	input     io.Reader
	clientCfg *config.Config
	mux       sync.Mutex
	ctx       context.Context
	Cancel    context.CancelFunc
}

type ClientUsage struct {
	client   *Client
	lastUsed time.Time
}

func NewClientsManager(cfg *config.Config) (manager *ClientsManager, err error) {
	var input io.Reader = os.Stdin
	if len(cfg.ClientsInputPath) != 0 {
		input, err = config.AppFs.Open(cfg.ClientsInputPath)
		if err != nil {
			return nil, err
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ClientsManager{
		clients:   make(map[string]*ClientUsage),
		mux:       sync.Mutex{},
		input:     input,
		clientCfg: cfg,
		ctx:       ctx,
		Cancel:    cancel,
	}, nil
}

func (cm *ClientsManager) ListenClientActions() error {
	if cm.input == os.Stdin {
		fmt.Println("Write clients tasks here in format <clientId> <item>")
	}

	cleanup := setInterval(cm.removeUnusedClients, 10)
	defer cleanup.Stop()

	lines, errChan := SubscribeToFileInput(cm.input)

	for {
		select {
		case <-cm.ctx.Done():
			return nil
		case line := <-lines:
			if len(line) != 0 {
				go cm.processClientAction(line)
			}
		case err := <-errChan:
			if err != nil {
				return err
			}
		}
	}
}

func (cm *ClientsManager) removeUnusedClients() {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	for clientId, clientUsage := range cm.clients {
		if time.Since(clientUsage.lastUsed) > time.Second*10 {
			delete(cm.clients, clientId)
		}
	}
}

func (cm *ClientsManager) processClientAction(inputStr string) error {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	if len(inputStr) <= 1 {
		return fmt.Errorf("Wrong input string. Should be in format <clientId> <item>")
	}

	splittedInput := strings.Split(inputStr, " ")

	clientId := splittedInput[0]
	itemStr := strings.Join(splittedInput[1:], " ")

	var item *types.Item
	err := json.Unmarshal([]byte(itemStr), &item)
	if err != nil {
		return err
	}
	if client, ok := cm.clients[clientId]; ok {
		go client.client.SendMessage(item)
		client.lastUsed = time.Now()
		return nil
	}
	client, err := NewClient(cm.clientCfg)
	if err != nil {
		return err
	}
	cm.clients[clientId] = &ClientUsage{client, time.Now()}
	go client.SendMessage(item)
	return nil
}
