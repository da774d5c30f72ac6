package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"listproject/config"
	"listproject/health"
	"listproject/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/inconshreveable/log15"
	"github.com/spf13/afero"
)

const defaultLoadReportSeconds = 30

// Server drains operation items from the queue and applies them to its
// linked list. The list itself is not safe for concurrent use, so every
// access happens under dataMux.
type Server struct {
	data           *types.LinkedList[string]
	queue          *sqs.SQS
	queueUrl       string
	waitTime       int64
	loadReportTime time.Duration
	logFile        afero.File
	load           *health.Load
	ctx            context.Context
	Cancel         context.CancelFunc
	logger         log15.Logger
	dataMux        sync.Mutex
	logsMux        sync.Mutex
}

func NewServer(conf *config.Config) (*Server, error) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(conf.Aws.Region),
		Credentials: credentials.NewStaticCredentials(conf.Aws.ClientId, conf.Aws.ClientSecret, conf.Aws.ClientToken),
	}))

	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, fmt.Errorf("Cannot assign session with credentials\n%s", err)
	}

	logFile, err := config.AppFs.OpenFile(conf.LogFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return nil, err
	}

	loadReportSeconds := conf.LoadReportSeconds
	if loadReportSeconds <= 0 {
		loadReportSeconds = defaultLoadReportSeconds
	}

	ctx, cancel := context.WithCancel(context.Background())

	logger := log15.New("service", "server")
	logger.SetHandler(log15.LvlFilterHandler(log15.LvlDebug, log15.StdoutHandler))

	return &Server{
		data:           types.NewLinkedList[string](),
		queue:          sqs.New(sess),
		logFile:        logFile,
		ctx:            ctx,
		Cancel:         cancel,
		queueUrl:       conf.Aws.QueueUrl,
		logger:         logger,
		waitTime:       conf.ServerWaitTimeSeconds,
		loadReportTime: time.Duration(loadReportSeconds) * time.Second,
	}, nil
}

func (s *Server) StartServer() error {
	s.logger.Debug("Listening queue!")
	defer s.Cancel()
	s.load = health.StartLoadMonitoring()
	defer s.load.Close()
	go s.reportLoad()
	messagesChan := make(chan *sqs.Message)
	go s.listenMessages(messagesChan)
	err := s.processMessages(messagesChan)
	return err
}

func (s *Server) listenMessages(messagesChan chan *sqs.Message) error {
	for {
		select {
		case <-s.ctx.Done():
			return nil
		default:
			msgResult, err := s.queue.ReceiveMessage(&sqs.ReceiveMessageInput{
				AttributeNames: []*string{
					aws.String(sqs.MessageSystemAttributeNameSentTimestamp),
				},
				MessageAttributeNames: []*string{
					aws.String(sqs.QueueAttributeNameAll),
				},
				QueueUrl:            &s.queueUrl,
				MaxNumberOfMessages: aws.Int64(10),
				WaitTimeSeconds:     aws.Int64(s.waitTime),
			})
			if err != nil {
				s.logger.Error("Error while receiving messages", "error", err.Error())
				s.Cancel()
				return err
			}
			for _, message := range msgResult.Messages {
				messagesChan <- message
			}
		}
	}
}

func (s *Server) processMessages(messagesChan chan *sqs.Message) error {
	for {
		select {
		case <-s.ctx.Done():
			return nil
		case message := <-messagesChan:
			if message == nil {
				continue
			}
			go func(message string) {
				var item *types.Item
				err := json.Unmarshal([]byte(message), &item)
				if err != nil {
					s.logger.Error("Cannot unmarhsal message", "error", err.Error())
				}
				if item != nil {
					log := s.processItem(item)
					s.logsMux.Lock()
					defer s.logsMux.Unlock()
					s.logFile.WriteString(fmt.Sprintf("%s || %s\n", time.Now().Format(time.RFC822), log))
				}
			}(*message.Body)
			_, err := s.queue.DeleteMessage(&sqs.DeleteMessageInput{
				QueueUrl:      &s.queueUrl,
				ReceiptHandle: message.ReceiptHandle,
			})
			if err != nil {
				s.logger.Error("Error while deleting message", "error", err)
				return err
			}
		}
	}
}

// processItem applies one action to the list and renders the outcome for
// the operations log. Failed operations report their reason instead of
// aborting; every mutation happens in full under dataMux.
func (s *Server) processItem(item *types.Item) (logMessage string) {
	s.dataMux.Lock()
	defer s.dataMux.Unlock()
	switch item.Action {
	case types.PushItem:
		s.data.Push(item.Value)
		return fmt.Sprintf("PushItem() done. Item(value: %s) appended, length: %d", item.Value, s.data.Len())
	case types.PopItem:
		node, ok := s.data.Pop()
		if !ok {
			return "PopItem() failed. List is empty"
		}
		return fmt.Sprintf("PopItem() done. Item(value: %s) removed, length: %d", node.Value, s.data.Len())
	case types.UnshiftItem:
		s.data.Unshift(item.Value)
		return fmt.Sprintf("UnshiftItem() done. Item(value: %s) prepended, length: %d", item.Value, s.data.Len())
	case types.ShiftItem:
		node, ok := s.data.Shift()
		if !ok {
			return "ShiftItem() failed. List is empty"
		}
		return fmt.Sprintf("ShiftItem() done. Item(value: %s) removed, length: %d", node.Value, s.data.Len())
	case types.GetItem:
		node, ok := s.data.Get(item.Index)
		if !ok {
			return fmt.Sprintf("GetItem() failed. Index %d out of range", item.Index)
		}
		return fmt.Sprintf("GetItem() done. Item(index: %d, value: %s)", item.Index, node.Value)
	case types.SetItem:
		if ok := s.data.Set(item.Index, item.Value); !ok {
			return fmt.Sprintf("SetItem() failed. Index %d out of range", item.Index)
		}
		return fmt.Sprintf("SetItem() done. Item(index: %d, value: %s) overwritten", item.Index, item.Value)
	case types.InsertItem:
		if ok := s.data.Insert(item.Index, item.Value); !ok {
			return fmt.Sprintf("InsertItem() failed. Index %d out of range", item.Index)
		}
		return fmt.Sprintf("InsertItem() done. Item(index: %d, value: %s) inserted, length: %d", item.Index, item.Value, s.data.Len())
	case types.RemoveItem:
		node, ok := s.data.Remove(item.Index)
		if !ok {
			return fmt.Sprintf("RemoveItem() failed. Index %d out of range", item.Index)
		}
		return fmt.Sprintf("RemoveItem() done. Item(index: %d, value: %s) removed, length: %d", item.Index, node.Value, s.data.Len())
	case types.InspectList:
		return fmt.Sprintf("InspectList() done. %s", s.data)
	default:
		return "Unknown action!"
	}
}

// reportLoad periodically logs process load next to the list size until the
// server is cancelled.
func (s *Server) reportLoad() {
	ticker := time.NewTicker(s.loadReportTime)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.dataMux.Lock()
			length := s.data.Len()
			s.dataMux.Unlock()
			s.logger.Debug("Server load", "cpuPercent", s.load.CPU(), "memoryMB", s.load.Memory(), "listLength", length)
		}
	}
}
